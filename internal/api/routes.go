package api

import (
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, h *Handler, spec http.HandlerFunc) {
	routes.Register(mux, h.Routes(), routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/openapi.json", Handler: spec},
		},
	})
}
