package dashboard

import (
	"github.com/swrzee/console/modules/dashboard/presentation/controllers"
	"github.com/swrzee/console/pkg/application"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	app.RegisterControllers(
		controllers.NewDashboardController(app),
		controllers.NewUsersController(app),
		controllers.NewServicesController(app),
		controllers.NewBatchesController(app),
	)
	return nil
}

func (m *Module) Name() string {
	return "dashboard"
}
