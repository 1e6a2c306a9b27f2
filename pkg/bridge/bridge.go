// Package bridge turns one prompt into exactly one outbound generation call
// and normalizes the outcome into a Result. Failures of any kind are returned
// as data; Generate never returns an error or lets a panic escape.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Generator is the remote text-generation capability.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Config fixes the model and the per-call timeout for the lifetime of a Bridge.
// A zero Timeout disables the bound.
type Config struct {
	Model   string
	Timeout time.Duration
}

// Bridge issues single generation calls against a Generator.
// It holds no mutable state and is safe for use by multiple goroutines.
type Bridge struct {
	gen     Generator
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a Bridge bound to gen and cfg.
func New(gen Generator, cfg Config, logger *slog.Logger) *Bridge {
	return &Bridge{
		gen:     gen,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger.With("system", "bridge"),
	}
}

// Model returns the model identifier sent with every call.
func (b *Bridge) Model() string {
	return b.model
}

// Generate sends prompt as the entire content payload in one call and returns
// Success with the response text or Failure with a description of the cause.
// The prompt must already have passed Validate.
func (b *Bridge) Generate(ctx context.Context, prompt string) Result {
	start := time.Now()

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	text, err := b.call(ctx, prompt)
	if err != nil {
		b.logger.ErrorContext(
			ctx, "generation failed",
			"model", b.model,
			"prompt_len", len(prompt),
			"duration", time.Since(start),
			"error", err,
		)
		return Failure(fmt.Sprintf("generation failed: %v", err))
	}

	b.logger.InfoContext(
		ctx, "generation complete",
		"model", b.model,
		"prompt_len", len(prompt),
		"response_len", len(text),
		"duration", time.Since(start),
	)

	return Success(text)
}

func (b *Bridge) call(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()

	text, err = b.gen.Generate(ctx, b.model, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && b.timeout > 0 {
			return "", fmt.Errorf("%w after %v: %w", ErrTimeout, b.timeout, err)
		}
		return "", err
	}
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
