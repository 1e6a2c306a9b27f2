package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/formatting"
	"github.com/JaimeStill/neurovia/pkg/handlers"
	"github.com/JaimeStill/neurovia/pkg/routes"
)

// Generator is the subset of *bridge.Bridge the API depends on.
type Generator interface {
	Generate(ctx context.Context, prompt string) bridge.Result
	Model() string
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// Info describes the running service.
type Info struct {
	Version string `json:"version"`
	Model   string `json:"model"`
}

// Handler provides HTTP endpoints for prompt generation.
type Handler struct {
	gen           Generator
	logger        *slog.Logger
	maxPromptSize int64
	version       string
}

// NewHandler creates a Handler. A maxPromptSize of zero disables the body limit.
func NewHandler(gen Generator, logger *slog.Logger, maxPromptSize int64, version string) *Handler {
	return &Handler{
		gen:           gen,
		logger:        logger.With("handler", "generate"),
		maxPromptSize: maxPromptSize,
		version:       version,
	}
}

// Routes returns the route group definition for generation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/info", Handler: h.Info},
			{Method: "POST", Pattern: "/generate", Handler: h.Generate},
		},
	}
}

// Info returns the service version and the fixed model identifier.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Info{Version: h.version, Model: h.gen.Model()})
}

// Generate validates the prompt and issues one generation call. A failed
// call is reported as 502 with the failed Result as the body.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req, err := h.decode(w, r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := bridge.Validate(req.Prompt); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result := h.gen.Generate(r.Context(), req.Prompt)
	if !result.Succeeded() {
		handlers.RespondJSON(w, http.StatusBadGateway, result)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (GenerateRequest, error) {
	var req GenerateRequest

	if h.maxPromptSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPromptSize)
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return req, fmt.Errorf("%w: limit %s", ErrPromptTooLarge, formatting.FormatBytes(tooLarge.Limit, 0))
		}
		return req, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return req, nil
}
