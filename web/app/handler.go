package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/formatting"
	"github.com/JaimeStill/neurovia/pkg/routes"
	"github.com/JaimeStill/neurovia/pkg/web"
)

// Form sources. Each form renders its own outcome.
const (
	SourceQuick = "quick"
	SourceAsk   = "ask"
)

type pageData struct {
	Source  string
	Prompt  string
	Warning string
	Result  *bridge.Result
}

type handler struct {
	gen           Generator
	templates     *web.TemplateSet
	logger        *slog.Logger
	maxPromptSize int64
}

func newHandler(gen Generator, templates *web.TemplateSet, logger *slog.Logger, maxPromptSize int64) *handler {
	return &handler{
		gen:           gen,
		templates:     templates,
		logger:        logger.With("handler", "app"),
		maxPromptSize: maxPromptSize,
	}
}

func (h *handler) routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: indexView.Route, Handler: h.templates.PageHandler(layout, indexView)},
			{Method: "POST", Pattern: "/generate", Handler: h.generate},
		},
	}
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	if h.maxPromptSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPromptSize)
	}

	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.render(w, http.StatusRequestEntityTooLarge, &pageData{
				Source:  SourceQuick,
				Warning: fmt.Sprintf("Prompt exceeds %s.", formatting.FormatBytes(tooLarge.Limit, 0)),
			})
			return
		}
		h.render(w, http.StatusBadRequest, &pageData{Source: SourceQuick, Warning: "Invalid form submission."})
		return
	}

	data := &pageData{
		Source: formSource(r.PostFormValue("source")),
		Prompt: r.PostFormValue("prompt"),
	}

	if err := bridge.Validate(data.Prompt); err != nil {
		data.Warning = "Please enter a prompt."
		h.render(w, http.StatusUnprocessableEntity, data)
		return
	}

	result := h.gen.Generate(r.Context(), data.Prompt)
	data.Result = &result

	status := http.StatusOK
	if !result.Succeeded() {
		status = http.StatusBadGateway
	}
	h.render(w, status, data)
}

func (h *handler) render(w http.ResponseWriter, status int, data *pageData) {
	view := web.ViewData{Title: indexView.Title, Data: data}
	if err := h.templates.Render(w, status, layout, indexView.Template, view); err != nil {
		h.logger.Error("render failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func formSource(v string) string {
	if v == SourceAsk {
		return SourceAsk
	}
	return SourceQuick
}
