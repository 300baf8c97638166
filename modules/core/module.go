package core

import (
	"github.com/swrzee/console/modules/core/infrastructure/api"
	"github.com/swrzee/console/modules/core/presentation/assets"
	"github.com/swrzee/console/modules/core/presentation/controllers"
	"github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	client := api.NewClient(conf.API.BaseURL, conf.API.Timeout)
	sessions, err := newSessionStore(conf)
	if err != nil {
		return err
	}

	app.RegisterServices(
		client,
		services.NewAuthService(client, sessions, app.EventPublisher()),
	)
	app.RegisterControllers(
		controllers.NewLoginController(app),
		controllers.NewStaticFilesController(assets.HashFS),
	)
	return nil
}

func newSessionStore(conf *configuration.Configuration) (services.SessionStore, error) {
	if conf.Session.Storage == configuration.StorageRedis {
		return services.NewRedisSessionStore(conf.Session.RedisURL)
	}
	return services.NewMemorySessionStore(), nil
}

func (m *Module) Name() string {
	return "core"
}
