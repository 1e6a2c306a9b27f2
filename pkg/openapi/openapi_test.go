package openapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/neurovia/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")
	spec.SetDescription("A test API")
	spec.AddServer("/api")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi version: got %s, want 3.1.0", spec.OpenAPI)
	}
	if spec.Info.Title != "Test API" || spec.Info.Version != "1.0.0" {
		t.Errorf("info: got %+v", spec.Info)
	}
	if spec.Info.Description != "A test API" {
		t.Errorf("description: got %s", spec.Info.Description)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api" {
		t.Errorf("servers: got %+v", spec.Servers)
	}
	if spec.Components == nil || spec.Paths == nil {
		t.Fatal("components and paths should be initialized")
	}
}

func TestRefs(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"schema", openapi.SchemaRef("Result").Ref, "#/components/schemas/Result"},
		{"response", openapi.ResponseRef("BadRequest").Ref, "#/components/responses/BadRequest"},
		{"request body", openapi.RequestBodyJSON("GenerateRequest", true).Content["application/json"].Schema.Ref, "#/components/schemas/GenerateRequest"},
		{"response json", openapi.ResponseJSON("ok", "Result").Content["application/json"].Schema.Ref, "#/components/schemas/Result"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("ref: got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	c := openapi.NewComponents()

	if _, ok := c.Schemas["Error"]; !ok {
		t.Error("missing default Error schema")
	}
	for _, name := range []string{"BadRequest", "PayloadTooLarge"} {
		if _, ok := c.Responses[name]; !ok {
			t.Errorf("missing default response: %s", name)
		}
	}

	c.AddSchemas(map[string]*openapi.Schema{"Result": {Type: "object"}})
	c.AddResponses(map[string]*openapi.Response{"BadGateway": {Description: "upstream failed"}})

	if _, ok := c.Schemas["Result"]; !ok {
		t.Error("Result schema not added")
	}
	if _, ok := c.Schemas["Error"]; !ok {
		t.Error("default Error schema should still exist")
	}
	if _, ok := c.Responses["BadGateway"]; !ok {
		t.Error("BadGateway response not added")
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg openapi.Config
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if cfg.Title != "Neurovia API" {
			t.Errorf("title: got %s", cfg.Title)
		}
		if cfg.Description == "" {
			t.Error("description should default")
		}
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("TEST_OPENAPI_TITLE", "Env Title")
		cfg := openapi.Config{Title: "File Title"}
		if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
			t.Fatalf("finalize: %v", err)
		}
		if cfg.Title != "Env Title" {
			t.Errorf("title: got %s, want Env Title", cfg.Title)
		}
	})

	t.Run("merge", func(t *testing.T) {
		cfg := openapi.Config{Title: "Base", Description: "base"}
		cfg.Merge(&openapi.Config{Title: "Overlay"})
		if cfg.Title != "Overlay" || cfg.Description != "base" {
			t.Errorf("merge: got %+v", cfg)
		}
	})
}

func TestServeSpec(t *testing.T) {
	data, err := openapi.MarshalJSON(openapi.NewSpec("Test", "1.0.0"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	srv := httptest.NewServer(openapi.ServeSpec(data))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("content type: got %s", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed["openapi"] != "3.1.0" {
		t.Errorf("openapi: got %v", parsed["openapi"])
	}
}
