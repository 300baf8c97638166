package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/ulule/limiter/v3"

	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/core/presentation/templates/pages/login"
	"github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/composables"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/middleware"
	"github.com/swrzee/console/pkg/shared"
)

func NewLoginController(app application.Application) application.Controller {
	return &LoginController{
		app:         app,
		authService: app.Service(services.AuthService{}).(*services.AuthService),
	}
}

type LoginController struct {
	app         application.Application
	authService *services.AuthService
}

func (c *LoginController) Key() string {
	return "/login"
}

func (c *LoginController) Register(r *mux.Router) {
	conf := configuration.Use()

	getRouter := r.PathPrefix("/login").Subrouter()
	getRouter.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectAuthenticated(),
	)
	getRouter.HandleFunc("", c.Get).Methods(http.MethodGet)
	getRouter.HandleFunc("/super-admin", c.GetSuperAdmin).Methods(http.MethodGet)

	postRouter := r.PathPrefix("/login").Subrouter()
	if conf.RateLimit.Enabled {
		var store limiter.Store
		if conf.RateLimit.Storage == configuration.StorageRedis {
			redisStore, err := middleware.NewRedisStore(conf.RateLimit.RedisURL)
			if err != nil {
				conf.Logger().WithError(err).Warn("failed to create redis rate limit store, falling back to memory")
			} else {
				store = redisStore
			}
		}
		if store == nil {
			store = middleware.NewMemoryStore()
		}
		postRouter.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: conf.RateLimit.LoginPerMin,
			Period:            time.Minute,
			Store:             store,
		}))
	}
	postRouter.HandleFunc("", c.Post).Methods(http.MethodPost)
	postRouter.HandleFunc("/super-admin", c.PostSuperAdmin).Methods(http.MethodPost)

	adminRouter := r.PathPrefix("/login/admins").Subrouter()
	adminRouter.Use(
		middleware.Authorize(c.authService),
		middleware.RedirectNotAuthenticated(),
	)
	adminRouter.HandleFunc("/new", c.GetNewAdmin).Methods(http.MethodGet)
	adminRouter.HandleFunc("", c.PostAdmin).Methods(http.MethodPost)

	logoutRouter := r.PathPrefix("/logout").Subrouter()
	logoutRouter.Use(middleware.Authorize(c.authService))
	logoutRouter.HandleFunc("", c.Logout).Methods(http.MethodPost)
}

func (c *LoginController) Get(w http.ResponseWriter, r *http.Request) {
	errorsMap, err := composables.UseFlashMap[string, string](w, r, "errorsMap")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	errorMessage, err := composables.UseFlash(w, r, "error")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	props := &login.LoginProps{
		Email:        r.URL.Query().Get("email"),
		Next:         r.URL.Query().Get("next"),
		ErrorMessage: string(errorMessage),
		ErrorsMap:    errorsMap,
	}
	if err := login.Index(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *LoginController) Post(w http.ResponseWriter, r *http.Request) {
	logger := composables.UseLogger(r.Context())
	dto, err := composables.UseForm(&LoginDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	next := r.URL.Query().Get("next")
	backToLogin := fmt.Sprintf("/login?email=%s&next=%s", url.QueryEscape(dto.Email), url.QueryEscape(next))

	if errorsMap, ok := dto.Ok(); !ok {
		shared.SetFlashMap(w, "errorsMap", errorsMap)
		http.Redirect(w, r, backToLogin, http.StatusFound)
		return
	}

	sess, err := c.authService.Login(r.Context(), dto.Email, dto.Password)
	if err != nil {
		logger.WithError(err).Error("failed to authenticate user")
		message := api.GenericErrorMessage
		if apiErr, ok := api.AsError(err); ok {
			message = apiErr.Message
		}
		shared.SetFlash(w, "error", []byte(message))
		http.Redirect(w, r, backToLogin, http.StatusFound)
		return
	}

	for _, cookie := range c.authService.Cookies(sess) {
		http.SetCookie(w, cookie)
	}

	// Superadmins land on the admin creation flow first.
	if sess.Profile.Role == "superadmin" {
		http.Redirect(w, r, "/login/admins/new", http.StatusFound)
		return
	}
	if next == "" {
		next = "/dashboard"
	}
	http.Redirect(w, r, next, http.StatusFound)
}

func (c *LoginController) GetSuperAdmin(w http.ResponseWriter, r *http.Request) {
	props := &login.SuperAdminProps{
		Created: r.URL.Query().Get("created") == "1",
	}
	if err := login.SuperAdmin(props).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *LoginController) PostSuperAdmin(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&AccountDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	render := func(props *login.SuperAdminProps) {
		if err := login.SuperAdmin(props).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
	if errorsMap, ok := dto.Ok(); !ok {
		render(&login.SuperAdminProps{Values: dto.Values(), ErrorsMap: errorsMap})
		return
	}
	req := &api.RegisterSuperAdminRequest{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Password:    dto.Password,
	}
	if err := c.authService.RegisterSuperAdmin(r.Context(), req); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to register super admin")
		props := &login.SuperAdminProps{Values: dto.Values(), ErrorMessage: api.GenericErrorMessage}
		if apiErr, ok := api.AsError(err); ok {
			props.ErrorMessage = apiErr.Message
			props.ErrorsMap = fieldErrorsFrom(apiErr)
		}
		render(props)
		return
	}
	http.Redirect(w, r, "/login/super-admin?created=1", http.StatusFound)
}

func (c *LoginController) GetNewAdmin(w http.ResponseWriter, r *http.Request) {
	if err := login.Admin(&login.AdminProps{}).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *LoginController) PostAdmin(w http.ResponseWriter, r *http.Request) {
	dto, err := composables.UseForm(&AccountDTO{}, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	render := func(props *login.AdminProps) {
		if err := login.Admin(props).Render(r.Context(), w); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
	if errorsMap, ok := dto.Ok(); !ok {
		render(&login.AdminProps{Values: dto.Values(), ErrorsMap: errorsMap})
		return
	}
	req := &api.CreateAdminRequest{
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Password:    dto.Password,
		Role:        "admin",
	}
	if err := c.authService.CreateAdmin(r.Context(), req); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Error("failed to create admin")
		props := &login.AdminProps{Values: dto.Values(), ErrorMessage: api.GenericErrorMessage}
		if apiErr, ok := api.AsError(err); ok {
			props.ErrorMessage = apiErr.Message
			props.ErrorsMap = fieldErrorsFrom(apiErr)
		}
		render(props)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (c *LoginController) Logout(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	if cookie, err := r.Cookie(conf.SidCookieKey); err == nil {
		if err := c.authService.Logout(r.Context(), cookie.Value); err != nil {
			composables.UseLogger(r.Context()).WithError(err).Warn("failed to destroy session")
		}
	}
	for _, cookie := range c.authService.ClearCookies() {
		http.SetCookie(w, cookie)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
