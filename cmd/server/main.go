package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/neurovia/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

// run halts before constructing anything that can reach the model when the
// configuration, including the credential, fails to load.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		return fmt.Errorf("server init failed: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	<-ctx.Done()

	return srv.Shutdown(cfg.ShutdownTimeoutDuration())
}
