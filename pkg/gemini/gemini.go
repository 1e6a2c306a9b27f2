// Package gemini implements bridge.Generator over the Google Gemini API
// using the official genai SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

var (
	ErrMissingAPIKey = errors.New("gemini api key required")
	ErrGenerate      = errors.New("gemini generate content")
)

// Config binds a Client to a credential and, optionally, a non-default endpoint.
type Config struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	HTTPClient *http.Client
}

// Client wraps a single genai.Client constructed once per process.
type Client struct {
	client *genai.Client
}

// New constructs a Client bound to cfg.APIKey.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{client: client}, nil
}

// Generate sends prompt as the sole user content to model and returns the
// concatenated text of the first candidate.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerate, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrGenerate)
	}
	return resp.Text(), nil
}
