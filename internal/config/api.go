package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/neurovia/pkg/formatting"
	"github.com/JaimeStill/neurovia/pkg/middleware"
	"github.com/JaimeStill/neurovia/pkg/openapi"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "NEUROVIA_CORS_ENABLED",
	Origins:          "NEUROVIA_CORS_ORIGINS",
	AllowedMethods:   "NEUROVIA_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "NEUROVIA_CORS_ALLOWED_HEADERS",
	AllowCredentials: "NEUROVIA_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "NEUROVIA_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "NEUROVIA_OPENAPI_TITLE",
	Description: "NEUROVIA_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, OpenAPI, and request size settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxPromptSize string                `toml:"max_prompt_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

// MaxPromptSizeBytes returns MaxPromptSize as a byte count.
func (c *APIConfig) MaxPromptSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxPromptSize)
	if err != nil {
		return 32 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxPromptSize != "" {
		c.MaxPromptSize = overlay.MaxPromptSize
	}
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxPromptSize == "" {
		c.MaxPromptSize = "32KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("NEUROVIA_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("NEUROVIA_API_MAX_PROMPT_SIZE"); v != "" {
		c.MaxPromptSize = v
	}
}

func (c *APIConfig) validate() error {
	size, err := formatting.ParseBytes(c.MaxPromptSize)
	if err != nil {
		return fmt.Errorf("invalid max_prompt_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("invalid max_prompt_size: %s", c.MaxPromptSize)
	}
	return nil
}
