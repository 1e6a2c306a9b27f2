// Package app serves the Neurovia prompt page: a Quick Prompt form and an
// Ask More field, both answered through the prompt bridge.
package app

import (
	"context"
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/middleware"
	"github.com/JaimeStill/neurovia/pkg/module"
	"github.com/JaimeStill/neurovia/pkg/routes"
	"github.com/JaimeStill/neurovia/pkg/web"
)

//go:embed templates static
var appFS embed.FS

const layout = "app"

var indexView = web.ViewDef{Route: "/{$}", Template: "index.html", Title: "Welcome"}

// Generator is the subset of *bridge.Bridge the page depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) bridge.Result
}

// Config holds the module's mount point and request limits.
type Config struct {
	BasePath      string
	MaxPromptSize int64
}

// NewModule creates the module that serves the prompt page at cfg.BasePath.
func NewModule(cfg Config, gen Generator, logger *slog.Logger) (*module.Module, error) {
	templates, err := web.NewTemplateSet(
		appFS,
		"templates/layouts/*.html",
		"templates/views",
		cfg.BasePath,
		[]web.ViewDef{indexView},
	)
	if err != nil {
		return nil, err
	}

	static, err := web.StaticServer(appFS, "static", "/static/")
	if err != nil {
		return nil, err
	}

	h := newHandler(gen, templates, logger, cfg.MaxPromptSize)

	mux := http.NewServeMux()
	routes.Register(mux, h.routes(), routes.Group{
		Prefix: "/static",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{file...}", Handler: static},
		},
	})

	m := module.New(cfg.BasePath, mux)
	m.Use(middleware.Logger(logger))

	return m, nil
}
