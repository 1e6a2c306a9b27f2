package api

import (
	"net/http"

	"github.com/JaimeStill/neurovia/pkg/openapi"
)

var minPrompt = 1

// Spec describes the API endpoints served under basePath.
func Spec(cfg *openapi.Config, version, basePath string) *openapi.Spec {
	spec := openapi.NewSpec(cfg.Title, version)
	spec.SetDescription(cfg.Description)
	spec.AddServer(basePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"GenerateRequest": {
			Type:     "object",
			Required: []string{"prompt"},
			Properties: map[string]*openapi.Schema{
				"prompt": {
					Type:        "string",
					Description: "Prompt forwarded verbatim to the model. Must contain non-whitespace text.",
					Example:     "What is the future of AI?",
					MinLength:   &minPrompt,
				},
			},
		},
		"Result": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status":  {Type: "string", Enum: []any{"succeeded", "failed"}},
				"text":    {Type: "string", Description: "Generated text, present when status is succeeded"},
				"message": {Type: "string", Description: "Failure description, present when status is failed"},
			},
		},
		"Info": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"version": {Type: "string"},
				"model":   {Type: "string", Example: "gemini-2.0-flash"},
			},
		},
	})

	spec.Paths["/generate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Generate a response",
			Description: "Issues exactly one generation call for a non-empty prompt.",
			Tags:        []string{"Generate"},
			RequestBody: openapi.RequestBodyJSON("GenerateRequest", true),
			Responses: map[int]*openapi.Response{
				http.StatusOK:                    openapi.ResponseJSON("Generated text", "Result"),
				http.StatusBadRequest:            openapi.ResponseRef("BadRequest"),
				http.StatusRequestEntityTooLarge: openapi.ResponseRef("PayloadTooLarge"),
				http.StatusBadGateway:            openapi.ResponseJSON("Generation call failed", "Result"),
			},
		},
	}

	spec.Paths["/info"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Service info",
			Tags:    []string{"Info"},
			Responses: map[int]*openapi.Response{
				http.StatusOK: openapi.ResponseJSON("Version and model", "Info"),
			},
		},
	}

	return spec
}
