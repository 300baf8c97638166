package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/middleware"
	"github.com/swrzee/console/pkg/shared"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	coreservices "github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/modules/dashboard/domain/entities/view"
	"github.com/swrzee/console/modules/dashboard/presentation/mappers"
	"github.com/swrzee/console/modules/dashboard/presentation/templates/pages/users"
)

const usersTabURL = "/dashboard?tab=users"

func NewUsersController(app application.Application) application.Controller {
	return &UsersController{
		app:         app,
		client:      app.Service(api.Client{}).(*api.Client),
		authService: app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	}
}

type UsersController struct {
	app         application.Application
	client      *api.Client
	authService *coreservices.AuthService
}

func (c *UsersController) Key() string {
	return "/users"
}

func (c *UsersController) Register(r *mux.Router) {
	router := r.PathPrefix("/users").Subrouter()
	router.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectNotAuthenticated(),
	)
	router.HandleFunc("/{id}", c.Show).Methods(http.MethodGet)
	router.HandleFunc("/{id}/edit", c.GetEdit).Methods(http.MethodGet)
	router.HandleFunc("/{id}/edit", c.PostEdit).Methods(http.MethodPost)
	router.HandleFunc("/{id}/assign", c.GetAssign).Methods(http.MethodGet)
	router.HandleFunc("/{id}/assign", c.PostAssign).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.GetDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.PostDelete).Methods(http.MethodPost)
}

func sessionName(r *http.Request) string {
	sess := composables.MustUseSession(r.Context())
	return strings.TrimSpace(sess.Profile.FirstName + " " + sess.Profile.LastName)
}

func (c *UsersController) fetchUser(w http.ResponseWriter, r *http.Request) (*api.User, bool) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	token, _ := composables.UseAccessToken(r.Context())
	user, err := c.client.User(r.Context(), token, id)
	if err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to fetch user")
		renderError(w, r, view.Users, err)
		return nil, false
	}
	return user, true
}

func (c *UsersController) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchUser(w, r)
	if !ok {
		return
	}
	props := &users.ShowProps{
		UserName: sessionName(r),
		User:     mappers.UserToViewModel(*user),
	}
	if err := users.Show(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *UsersController) GetEdit(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchUser(w, r)
	if !ok {
		return
	}
	dto := &UserEditDTO{
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		BatchID:           user.BatchID,
		Department:        user.Department,
		RollNumber:        user.RollNumber,
		Semester:          user.Semester,
		Institution:       user.Institution,
		FatherName:        user.FatherName,
		CourseCreditScore: user.CourseCreditScore,
		Grade:             user.Grade,
		PaymentStatus:     user.PaymentStatus,
		ActiveStatus:      user.ActiveStatus,
	}
	c.renderEdit(w, r, user.ID, dto.Values(), "", nil)
}

func (c *UsersController) renderEdit(w http.ResponseWriter, r *http.Request, id string, values map[string]string, errorMessage string, errorsMap map[string]string) {
	props := &users.EditProps{
		UserName:     sessionName(r),
		ID:           id,
		Values:       values,
		ErrorMessage: errorMessage,
		ErrorsMap:    errorsMap,
	}
	if err := users.Edit(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *UsersController) PostEdit(w http.ResponseWriter, r *http.Request) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	dto, err := composables.UseForm(&UserEditDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(); !ok {
		c.renderEdit(w, r, id, dto.Values(), "", errorsMap)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	current, err := c.client.User(r.Context(), token, id)
	if err != nil {
		renderError(w, r, view.Users, err)
		return
	}
	if err := c.client.UpdateUser(r.Context(), token, id, dto.ToRequest(current)); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to update user")
		message := api.GenericErrorMessage
		errorsMap := map[string]string{}
		if apiErr, ok := api.AsError(err); ok {
			message = apiErr.Message
			errorsMap = fieldErrorsFrom(apiErr)
		}
		c.renderEdit(w, r, id, dto.Values(), message, errorsMap)
		return
	}
	shared.Redirect(w, r, usersTabURL)
}

func (c *UsersController) GetAssign(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchUser(w, r)
	if !ok {
		return
	}
	c.renderAssign(w, r, user, "")
}

func (c *UsersController) renderAssign(w http.ResponseWriter, r *http.Request, user *api.User, errorMessage string) {
	token, _ := composables.UseAccessToken(r.Context())
	batches, err := c.client.Batches(r.Context(), token, &api.BatchFilter{Status: "running", Year: time.Now().Year()})
	if err != nil {
		renderError(w, r, view.Users, err)
		return
	}
	props := &users.AssignProps{
		UserName:     sessionName(r),
		User:         mappers.UserToViewModel(*user),
		Batches:      mappers.BatchesToViewModels(batches),
		ErrorMessage: errorMessage,
	}
	if err := users.Assign(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *UsersController) PostAssign(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchUser(w, r)
	if !ok {
		return
	}
	dto, err := composables.UseForm(&AssignDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, ok := dto.Ok(); !ok {
		c.renderAssign(w, r, user, "Select a batch")
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.AssignStudent(r.Context(), token, dto.BatchID, user.ID); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to assign student")
		message := api.GenericErrorMessage
		if apiErr, ok := api.AsError(err); ok {
			message = apiErr.Message
		}
		c.renderAssign(w, r, user, message)
		return
	}
	shared.Redirect(w, r, usersTabURL)
}

func (c *UsersController) GetDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := c.fetchUser(w, r)
	if !ok {
		return
	}
	props := &users.DeleteProps{
		UserName: sessionName(r),
		User:     mappers.UserToViewModel(*user),
	}
	if err := users.Delete(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *UsersController) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.DeleteUser(r.Context(), token, id); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete user")
		renderError(w, r, view.Users, err)
		return
	}
	shared.Redirect(w, r, usersTabURL)
}
