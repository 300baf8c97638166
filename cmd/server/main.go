package main

import (
	"log"
	"os"
	"runtime/debug"

	"github.com/swrzee/console/internal/server"
	"github.com/swrzee/console/modules"
	coreservices "github.com/swrzee/console/modules/core/services"
	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/configuration"
	"github.com/swrzee/console/pkg/eventbus"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.Options{
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.EventPublisher().Subscribe(func(event *coreservices.SessionCreatedEvent) {
		logger.WithField("user", event.Session.Profile.Email).Info("session created")
	})
	app.EventPublisher().Subscribe(func(event *coreservices.SessionDestroyedEvent) {
		logger.Info("session destroyed")
	})

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
