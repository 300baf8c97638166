package controllers

import (
	"net/http"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"

	"github.com/swrzee/console/pkg/application"
	"github.com/swrzee/console/pkg/configuration"
)

type StaticFilesController struct {
	fsys *hashfs.FS
}

func (c *StaticFilesController) Key() string {
	return "/static"
}

func (c *StaticFilesController) Register(r *mux.Router) {
	fsHandler := http.StripPrefix("/static/", hashfs.FileServer(c.fsys))
	cacheControl := "public, max-age=3600"
	if configuration.Use().GoAppEnvironment != configuration.Production {
		cacheControl = "no-cache, no-store, must-revalidate"
	}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", cacheControl)
		fsHandler.ServeHTTP(w, r)
	})
	r.PathPrefix("/static/").Handler(handler)
}

func NewStaticFilesController(fsys *hashfs.FS) application.Controller {
	return &StaticFilesController{fsys: fsys}
}
