package controllers

import (
	"net/http"
	"net/url"
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
	"github.com/swrzee/console/modules/dashboard/presentation/templates/pages/batches"
	"github.com/swrzee/console/modules/dashboard/presentation/viewmodels"
)

const batchesTabURL = "/dashboard?tab=batches"

func NewBatchesController(app application.Application) application.Controller {
	return &BatchesController{
		app:         app,
		client:      app.Service(api.Client{}).(*api.Client),
		authService: app.Service(coreservices.AuthService{}).(*coreservices.AuthService),
	}
}

type BatchesController struct {
	app         application.Application
	client      *api.Client
	authService *coreservices.AuthService
}

func (c *BatchesController) Key() string {
	return "/batches"
}

func (c *BatchesController) Register(r *mux.Router) {
	router := r.PathPrefix("/batches").Subrouter()
	router.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectNotAuthenticated(),
	)
	router.HandleFunc("/new", c.GetNew).Methods(http.MethodGet)
	router.HandleFunc("", c.Post).Methods(http.MethodPost)
	router.HandleFunc("/{id}/students", c.GetStudents).Methods(http.MethodGet)
	router.HandleFunc("/{id}/students/{userID}/remove", c.PostRemoveStudent).Methods(http.MethodPost)
	router.HandleFunc("/{id}/delete", c.GetDelete).Methods(http.MethodGet)
	router.HandleFunc("/{id}/delete", c.PostDelete).Methods(http.MethodPost)
}

func (c *BatchesController) courseServices(r *http.Request) ([]viewmodels.Service, error) {
	token, _ := composables.UseAccessToken(r.Context())
	items, err := c.client.Services(r.Context(), token, &api.ServiceFilter{Category: "Course", IsActive: true})
	if err != nil {
		return nil, err
	}
	return mappers.ServicesToViewModels(items), nil
}

func (c *BatchesController) GetNew(w http.ResponseWriter, r *http.Request) {
	c.renderNew(w, r, &BatchDTO{Year: time.Now().Year()}, "", nil)
}

func (c *BatchesController) renderNew(w http.ResponseWriter, r *http.Request, dto *BatchDTO, errorMessage string, errorsMap map[string]string) {
	options, err := c.courseServices(r)
	if err != nil {
		renderError(w, r, view.Batches, err)
		return
	}
	props := &batches.NewProps{
		UserName:     sessionName(r),
		Values:       dto.Values(),
		Selected:     dto.Selected(),
		Services:     options,
		ErrorMessage: errorMessage,
		ErrorsMap:    errorsMap,
	}
	if err := batches.New(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *BatchesController) Post(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&BatchDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if errorsMap, ok := dto.Ok(); !ok {
		c.renderNew(w, r, dto, "", errorsMap)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.CreateBatch(r.Context(), token, dto.ToRequest()); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to create batch")
		message := api.GenericErrorMessage
		errorsMap := map[string]string{}
		if apiErr, ok := api.AsError(err); ok {
			message = apiErr.Message
			errorsMap = fieldErrorsFrom(apiErr)
		}
		c.renderNew(w, r, dto, message, errorsMap)
		return
	}
	shared.Redirect(w, r, batchesTabURL)
}

func (c *BatchesController) fetchBatch(w http.ResponseWriter, r *http.Request) (*api.Batch, bool) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	token, _ := composables.UseAccessToken(r.Context())
	items, err := c.client.Batches(r.Context(), token, &api.BatchFilter{Status: "running", Year: time.Now().Year()})
	if err != nil {
		renderError(w, r, view.Batches, err)
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

func (c *BatchesController) GetStudents(w http.ResponseWriter, r *http.Request) {
	batch, ok := c.fetchBatch(w, r)
	if !ok {
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	users, err := c.client.Users(r.Context(), token)
	if err != nil {
		renderError(w, r, view.Batches, err)
		return
	}
	enrolled := make(map[string]bool, len(batch.Students))
	for _, id := range batch.Students {
		enrolled[id] = true
	}
	students := make([]api.User, 0, len(batch.Students))
	for _, u := range users {
		if enrolled[u.ID] {
			students = append(students, u)
		}
	}
	props := &batches.StudentsProps{
		UserName: sessionName(r),
		Batch:    mappers.BatchToViewModel(*batch),
		Students: mappers.UsersToViewModels(students),
	}
	if err := batches.Students(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *BatchesController) PostRemoveStudent(w http.ResponseWriter, r *http.Request) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := shared.GetParam(r, "userID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.RemoveStudent(r.Context(), token, id, userID); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to remove student")
		renderError(w, r, view.Batches, err)
		return
	}
	shared.Redirect(w, r, "/batches/"+url.PathEscape(id)+"/students")
}

func (c *BatchesController) GetDelete(w http.ResponseWriter, r *http.Request) {
	batch, ok := c.fetchBatch(w, r)
	if !ok {
		return
	}
	props := &batches.DeleteProps{
		UserName: sessionName(r),
		Batch:    mappers.BatchToViewModel(*batch),
	}
	if err := batches.Delete(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *BatchesController) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, err := shared.GetParam(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	token, _ := composables.UseAccessToken(r.Context())
	if err := c.client.DeleteBatch(r.Context(), token, id); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to delete batch")
		renderError(w, r, view.Batches, err)
		return
	}
	shared.Redirect(w, r, batchesTabURL)
}
