package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/JaimeStill/neurovia/pkg/bridge"
	"github.com/JaimeStill/neurovia/pkg/gemini"
)

const (
	// EnvGeminiAPIKey is the only source of the Gemini credential.
	EnvGeminiAPIKey = "GEMINI_API_KEY"

	EnvGeminiModel      = "NEUROVIA_GEMINI_MODEL"
	EnvGeminiBaseURL    = "NEUROVIA_GEMINI_BASE_URL"
	EnvGeminiAPIVersion = "NEUROVIA_GEMINI_API_VERSION"
	EnvGeminiTimeout    = "NEUROVIA_GEMINI_TIMEOUT"

	DefaultGeminiModel = "gemini-2.0-flash"
)

// ErrMissingCredential halts startup before any generation call can be made.
var ErrMissingCredential = errors.New("API key not found: set " + EnvGeminiAPIKey + " in the environment or .env file")

// GeminiConfig holds the model binding and the credential. APIKey is read
// from the environment only and is excluded from every serialized form.
type GeminiConfig struct {
	Model      string `toml:"model"`
	BaseURL    string `toml:"base_url"`
	APIVersion string `toml:"api_version"`
	Timeout    string `toml:"timeout"`
	APIKey     string `toml:"-" json:"-"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *GeminiConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// ClientConfig returns the gemini client settings bound to the credential.
func (c *GeminiConfig) ClientConfig() *gemini.Config {
	return &gemini.Config{
		APIKey:     c.APIKey,
		BaseURL:    c.BaseURL,
		APIVersion: c.APIVersion,
	}
}

// BridgeConfig returns the fixed model and timeout for the prompt bridge.
func (c *GeminiConfig) BridgeConfig() bridge.Config {
	return bridge.Config{
		Model:   c.Model,
		Timeout: c.TimeoutDuration(),
	}
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GeminiConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay. The credential is never merged.
func (c *GeminiConfig) Merge(overlay *GeminiConfig) {
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.APIVersion != "" {
		c.APIVersion = overlay.APIVersion
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *GeminiConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = DefaultGeminiModel
	}
	if c.Timeout == "" {
		c.Timeout = "60s"
	}
}

func (c *GeminiConfig) loadEnv() {
	if v := os.Getenv(EnvGeminiModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGeminiBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGeminiAPIVersion); v != "" {
		c.APIVersion = v
	}
	if v := os.Getenv(EnvGeminiTimeout); v != "" {
		c.Timeout = v
	}
	c.APIKey = os.Getenv(EnvGeminiAPIKey)
}

func (c *GeminiConfig) validate() error {
	if c.APIKey == "" {
		return ErrMissingCredential
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
