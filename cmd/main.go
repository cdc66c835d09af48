package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yungbote/aedb-backend/internal/app"
	"github.com/yungbote/aedb-backend/internal/platform/logger"
)

func main() {
	// Env
	cfg, err := app.LoadSettingsFromEnv()
	if err != nil {
		var cfgErr *app.ConfigError
		if errors.As(err, &cfgErr) {
			fmt.Fprintln(os.Stderr, cfgErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		}
		os.Exit(1)
	}

	// Logger
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	log.Info("Settings loaded", "settings", cfg.String())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("Startup failed", "error", err)
		log.Sync()
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		log.Error("Server stopped", "error", err)
		a.Close()
		os.Exit(1)
	}
	log.Info("Server stopped")
}
