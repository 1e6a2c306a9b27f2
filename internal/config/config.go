package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"
	DotEnvFile           = ".env"

	EnvNeuroviaEnv             = "NEUROVIA_ENV"
	EnvNeuroviaShutdownTimeout = "NEUROVIA_SHUTDOWN_TIMEOUT"
	EnvNeuroviaVersion         = "NEUROVIA_VERSION"
)

// Config is the root configuration for the Neurovia service.
type Config struct {
	Server          ServerConfig `toml:"server"`
	API             APIConfig    `toml:"api"`
	Gemini          GeminiConfig `toml:"gemini"`
	ShutdownTimeout string       `toml:"shutdown_timeout"`
	Version         string       `toml:"version"`
}

// Env returns the NEUROVIA_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvNeuroviaEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads .env (if present) into the process environment, then the base
// config (if present), applies any environment overlay, and finalizes all
// values. Variables already set in the environment win over .env entries.
// Load returns ErrMissingCredential when GEMINI_API_KEY is unset.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Gemini.Merge(&overlay.Gemini)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Gemini.Finalize(); err != nil {
		if errors.Is(err, ErrMissingCredential) {
			return err
		}
		return fmt.Errorf("gemini: %w", err)
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	return c.validate()
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvNeuroviaShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvNeuroviaVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	if c.Server.WriteTimeoutDuration() <= c.Gemini.TimeoutDuration() {
		return fmt.Errorf(
			"server write_timeout (%s) must exceed gemini timeout (%s)",
			c.Server.WriteTimeout, c.Gemini.Timeout,
		)
	}
	return nil
}

func loadDotEnv() error {
	if _, err := os.Stat(DotEnvFile); err != nil {
		return nil
	}
	if err := godotenv.Load(DotEnvFile); err != nil {
		return fmt.Errorf("load %s: %w", DotEnvFile, err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvNeuroviaEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
