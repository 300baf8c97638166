package server

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/swrzee/console/modules/core/presentation/controllers"
	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/middleware"
	"github.com/swrzee/console/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
}

func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Cors(options.Configuration.Origin),
		middleware.RequestParams(),
	}
	app.RegisterMiddleware(middlewares...)

	return server.NewHTTPServer(
		app,
		controllers.NotFound(),
		controllers.MethodNotAllowed(),
	), nil
}
