package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/middleware"
	"github.com/swrzee/console/pkg/projection"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	coreservices "github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
	"github.com/swrzee/console/modules/dashboard/presentation/mappers"
	"github.com/swrzee/console/modules/dashboard/presentation/templates/pages/dashboard"
	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
	"github.com/swrzee/console/modules/dashboard/services"
)

func NewDashboardController(app application.Application) application.Controller {
	return &DashboardController{
		app:         app,
		client:      app.Service(api.Client{}).(*api.Client),
		authService: app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	}
}

type DashboardController struct {
	app         application.Application
	client      *api.Client
	authService *coreservices.AuthService
}

func (c *DashboardController) Key() string {
	return "/dashboard"
}

func (c *DashboardController) Register(r *mux.Router) {
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}).Methods(http.MethodGet)

	router := r.PathPrefix("/dashboard").Subrouter()
	router.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectNotAuthenticated(),
	)
	router.HandleFunc("", c.Get).Methods(http.MethodGet)
}

func (c *DashboardController) Get(w http.ResponseWriter, r *http.Request) {
	active := view.Parse(r.URL.Query().Get("tab"))
	switch active {
	case view.Users:
		c.users(w, r)
	case view.Services:
		c.services(w, r)
	case view.Batches:
		c.batches(w, r)
	default:
		c.overview(w, r)
	}
}

func pageProps(r *http.Request, active view.View) dashboard.PageProps {
	sess := composables.MustUseSession(r.Context())
	name := strings.TrimSpace(sess.Profile.FirstName + " " + sess.Profile.LastName)
	return dashboard.PageProps{UserName: name, Active: active}
}

func (c *DashboardController) overview(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	token, _ := composables.UseAccessToken(r.Context())
	stats, err := c.client.Dashboard(r.Context(), token)
	if err != nil {
		logger.WithError(err).Error("failed to fetch dashboard stats")
		renderError(w, r, view.Overview, err)
		return
	}
	series := services.BuildPaymentSeries(stats.FinancialStats.RecentPayments, time.Now())
	props := &dashboard.OverviewProps{
		PageProps: pageProps(r, view.Overview),
		Overview:  mappers.OverviewToViewModel(*stats, series),
	}
	if err := dashboard.Overview(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func userSpec(perPage int) projection.Spec[api.User] {
	return projection.Spec[api.User]{
		SearchFields: []func(api.User) string{
			func(u api.User) string { return u.FirstName },
			func(u api.User) string { return u.LastName },
			func(u api.User) string { return u.Email },
			func(u api.User) string { return u.PhoneNumber },
			func(u api.User) string { return u.ID },
			func(u api.User) string { return u.UserID },
		},
		Exclude: services.IsAdministrative,
		SortKeys: map[string]func(api.User) (string, bool){
			"firstName":     stringKey(func(u api.User) string { return u.FirstName }),
			"email":         stringKey(func(u api.User) string { return u.Email }),
			"role":          stringKey(func(u api.User) string { return u.Role }),
			"userId":        stringKey(func(u api.User) string { return u.UserID }),
			"batchId":       stringKey(func(u api.User) string { return u.BatchID }),
			"activeStatus":  boolKey(func(u api.User) bool { return u.ActiveStatus }),
			"paymentStatus": boolKey(func(u api.User) bool { return u.PaymentStatus }),
		},
		PerPage: perPage,
	}
}

func stringKey(f func(api.User) string) func(api.User) (string, bool) {
	return func(u api.User) (string, bool) {
		v := f(u)
		return v, strings.TrimSpace(v) != ""
	}
}

func boolKey(f func(api.User) bool) func(api.User) (string, bool) {
	return func(u api.User) (string, bool) {
		return strconv.FormatBool(f(u)), true
	}
}

func (c *DashboardController) users(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	token, _ := composables.UseAccessToken(r.Context())
	users, err := c.client.Users(r.Context(), token)
	if err != nil {
		logger.WithError(err).Error("failed to fetch users")
		renderError(w, r, view.Users, err)
		return
	}

	st := projection.StateFromQuery(r.URL.Query().Get, "firstName")
	result := userSpec(configuration.Use().PageSize).Project(users, st)

	props := &dashboard.UsersProps{
		PageProps: pageProps(r, view.Users),
		Result: projection.Result[viewmodels.User]{
			Items:      mappers.UsersToViewModels(result.Items),
			Total:      result.Total,
			Page:       result.Page,
			TotalPages: result.TotalPages,
		},
		State: st,
		Stats: mappers.UserStatsToViewModel(services.CountUsers(users)),
	}
	if err := dashboard.Users(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *DashboardController) services(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	token, _ := composables.UseAccessToken(r.Context())
	items, err := c.client.Services(r.Context(), token, &api.ServiceFilter{Category: "Course", IsActive: true})
	if err != nil {
		logger.WithError(err).Error("failed to fetch services")
		renderError(w, r, view.Services, err)
		return
	}
	props := &dashboard.ServicesProps{
		PageProps: pageProps(r, view.Services),
		Services:  mappers.ServicesToViewModels(items),
	}
	if err := dashboard.Services(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *DashboardController) batches(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	token, _ := composables.UseAccessToken(r.Context())
	items, err := c.client.Batches(r.Context(), token, &api.BatchFilter{Status: "running", Year: time.Now().Year()})
	if err != nil {
		logger.WithError(err).Error("failed to fetch batches")
		renderError(w, r, view.Batches, err)
		return
	}
	props := &dashboard.BatchesProps{
		PageProps: pageProps(r, view.Batches),
		Batches:   mappers.BatchesToViewModels(items),
	}
	if err := dashboard.Batches(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
