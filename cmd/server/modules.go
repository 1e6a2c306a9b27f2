package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/neurovia/internal/api"
	"github.com/JaimeStill/neurovia/internal/config"
	"github.com/JaimeStill/neurovia/internal/infrastructure"
	"github.com/JaimeStill/neurovia/pkg/module"
	"github.com/JaimeStill/neurovia/web/app"
)

const appBasePath = "/app"

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra.Bridge, infra.Logger)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(
		app.Config{
			BasePath:      appBasePath,
			MaxPromptSize: cfg.API.MaxPromptSizeBytes(),
		},
		infra.Bridge,
		infra.Logger.With("module", "app"),
	)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, home string) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, home, http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, "ok")
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, "not ready")
			return
		}
		writeStatus(w, http.StatusOK, "ready")
	})

	return router
}

func writeStatus(w http.ResponseWriter, code int, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"status": status})
}
