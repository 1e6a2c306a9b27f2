// Package api assembles the JSON API module for prompt generation.
package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/neurovia/internal/config"
	"github.com/JaimeStill/neurovia/pkg/middleware"
	"github.com/JaimeStill/neurovia/pkg/module"
	"github.com/JaimeStill/neurovia/pkg/openapi"
)

// NewModule creates the API module with its handler, OpenAPI document, and middleware.
func NewModule(cfg *config.Config, gen Generator, logger *slog.Logger) (*module.Module, error) {
	logger = logger.With("module", "api")

	specBytes, err := openapi.MarshalJSON(Spec(&cfg.API.OpenAPI, cfg.Version, cfg.API.BasePath))
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}

	h := NewHandler(gen, logger, cfg.API.MaxPromptSizeBytes(), cfg.Version)

	mux := http.NewServeMux()
	registerRoutes(mux, h, openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(logger))

	return m, nil
}
