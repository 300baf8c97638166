package application

import (
	"reflect"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/swrzee/console/pkg/eventbus"
)

// Controller is a self-registering group of HTTP routes.
type Controller interface {
	// Key uniquely identifies the controller so late registrations
	// replace earlier ones instead of duplicating routes.
	Key() string
	Register(r *mux.Router)
}

// Module wires one feature area's services and controllers into the
// application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	EventPublisher() eventbus.EventBus
	Logger() *logrus.Logger

	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
}

type Options struct {
	EventBus eventbus.EventBus
	Logger   *logrus.Logger
}

func New(opts *Options) Application {
	return &application{
		eventPublisher: opts.EventBus,
		logger:         opts.Logger,
		controllers:    make(map[string]Controller),
		services:       make(map[reflect.Type]interface{}),
	}
}

// application with a dynamically extendable service registry
type application struct {
	eventPublisher eventbus.EventBus
	logger         *logrus.Logger
	services       map[reflect.Type]interface{}
	controllers    map[string]Controller
	middleware     []mux.MiddlewareFunc
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}

func (app *application) Logger() *logrus.Logger {
	return app.logger
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllers))
	for _, c := range app.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		app.controllers[c.Key()] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

// RegisterServices registers a new service in the application by its type
func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service retrieves a service by its type
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, exists := app.services[serviceType]
	if !exists {
		panic("service " + serviceType.Name() + " not found")
	}
	return svc
}
