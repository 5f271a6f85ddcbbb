package main

import (
	"context"
	"os"

	"github.com/srgjo27/seat_ledger/internal/app"
	"github.com/srgjo27/seat_ledger/internal/platform/config"
	"github.com/srgjo27/seat_ledger/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json", os.Stderr)
		app.Exit(log, "invalid configuration", err)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)

	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		app.Exit(log, "failed to start", err)
	}

	if err := a.Run(); err != nil {
		app.Exit(log, "server stopped with error", err)
	}
}
