package modules

import (
	"github.com/swrzee/console/modules/core"
	"github.com/swrzee/console/modules/dashboard"
	"github.com/swrzee/console/pkg/application"
)

var BuiltInModules = []application.Module{
	core.NewModule(),
	dashboard.NewModule(),
}

func Load(app application.Application, mods ...application.Module) error {
	for _, module := range mods {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
