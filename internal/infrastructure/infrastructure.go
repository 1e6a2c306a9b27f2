// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module requires: lifecycle coordination,
// logging, and the prompt bridge bound to the Gemini credential.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/neurovia/internal/config"
	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/gemini"
	"github.com/JaimeStill/neurovia/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Bridge    *bridge.Bridge
}

// New creates an Infrastructure from the application configuration.
// The Gemini client is constructed once here and shared read-only by every call.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	lc := lifecycle.New()

	client, err := gemini.New(lc.Context(), cfg.Gemini.ClientConfig())
	if err != nil {
		return nil, fmt.Errorf("gemini init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Bridge:    bridge.New(client, cfg.Gemini.BridgeConfig(), logger),
	}, nil
}

// Start registers infrastructure hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Info("bridge ready", "model", i.Bridge.Model())
	})
	return nil
}
