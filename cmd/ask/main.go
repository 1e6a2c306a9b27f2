// Command ask sends one prompt to Gemini and prints the response.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/JaimeStill/neurovia/internal/config"
	"github.com/JaimeStill/neurovia/internal/infrastructure"
	"github.com/JaimeStill/neurovia/pkg/bridge"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type cli struct {
	Model   string        `help:"Model identifier; defaults to the configured model."`
	Timeout time.Duration `help:"Bound on the generation call; defaults to the configured timeout."`
	Verbose bool          `short:"v" help:"Log bridge activity to stderr."`
	Prompt  []string      `arg:"" optional:"" help:"Prompt text; words are joined with spaces."`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var c cli
	exited := -1
	parser, err := kong.New(&c,
		kong.Name("ask"),
		kong.Description("Send one prompt to Gemini and print the response."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exited = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	_, err = parser.Parse(args)
	if exited >= 0 {
		return exited
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	prompt := strings.Join(c.Prompt, " ")
	if errors.Is(bridge.Validate(prompt), bridge.ErrEmptyPrompt) {
		fmt.Fprintln(stderr, "Please enter a query to get a response.")
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	if c.Model != "" {
		cfg.Gemini.Model = c.Model
	}
	if c.Timeout > 0 {
		cfg.Gemini.Timeout = c.Timeout.String()
	}

	level := slog.LevelError + 1
	if c.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	infra, err := infrastructure.NewWithLogger(cfg, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}

	result := infra.Bridge.Generate(ctx, prompt)
	if !result.Succeeded() {
		fmt.Fprintf(stderr, "An error occurred: %s\n", result.Message)
		return exitFailure
	}

	fmt.Fprintln(stdout, result.Text)
	return exitOK
}
