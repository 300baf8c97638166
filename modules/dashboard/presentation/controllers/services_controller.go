package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/middleware"
	"github.com/swrzee/console/pkg/shared"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	coreservices "github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
	"github.com/swrzee/console/modules/dashboard/presentation/mappers"
	"github.com/swrzee/console/modules/dashboard/presentation/templates/pages/services"
)

const servicesTabURL = "/dashboard?tab=services"

func NewServicesController(app application.Application) application.Controller {
	return &ServicesController{
		app:         app,
		client:      app.Service(api.Client{}).(*api.Client),
		authService: app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	}
}

type ServicesController struct {
	app         application.Application
	client      *api.Client
	authService *coreservices.AuthService
}

func (c *ServicesController) Key() string {
	return "/services"
}

func (c *ServicesController) Register(r *mux.Router) {
	router := r.PathPrefix("/services").Subrouter()
	router.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectNotAuthenticated(),
	)
	router.HandleFunc("/new", c.GetNew).Methods(http.MethodGet)
	router.HandleFunc("", c.Post).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.GetDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.PostDelete).Methods(http.MethodPost)
}

func (c *ServicesController) GetNew(w http.ResponseWriter, r *http.Request) {
	c.renderNew(w, r, map[string]string{}, "", nil)
}

func (c *ServicesController) renderNew(w http.ResponseWriter, r *http.Request, values map[string]string, errorMessage string, errorsMap map[string]string) {
	props := &services.NewProps{
		UserName:     sessionName(r),
		Values:       values,
		ErrorMessage: errorMessage,
		ErrorsMap:    errorsMap,
	}
	if err := services.New(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *ServicesController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&ServiceDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(); !ok {
		c.renderNew(w, r, dto.Values(), "", errorsMap)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.CreateService(r.Context(), token, dto.ToRequest()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to create service")
		message := api.GenericErrorMessage
		errorsMap := map[string]string{}
		if apiErr, ok := api.AsError(err); ok {
			message = apiErr.Message
			errorsMap = fieldErrorsFrom(apiErr)
		}
		c.renderNew(w, r, dto.Values(), message, errorsMap)
		return
	}
	shared.Redirect(w, r, servicesTabURL)
}

func (c *ServicesController) fetchService(w http.ResponseWriter, r *http.Request) (*api.Service, bool) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	token, _ := composables.UseAccessToken(r.Context())
	items, err := c.client.Services(r.Context(), token, &api.ServiceFilter{Category: "Course", IsActive: true})
	if err != nil {
		renderError(w, r, view.Services, err)
		return nil, false
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], true
		}
	}
	http.NotFound(w, r)
	return nil, false
}

func (c *ServicesController) GetDelete(w http.ResponseWriter, r *http.Request) {
	svc, ok := c.fetchService(w, r)
	if !ok {
		return
	}
	props := &services.DeleteProps{
		UserName: sessionName(r),
		Service:  mappers.ServiceToViewModel(*svc),
	}
	if err := services.Delete(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *ServicesController) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.DeleteService(r.Context(), token, id); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete service")
		renderError(w, r, view.Services, err)
		return
	}
	shared.Redirect(w, r, servicesTabURL)
}
