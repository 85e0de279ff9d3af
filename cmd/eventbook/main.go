package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aka-Harsh/eventbook/internal/client/cli"
	"github.com/aka-Harsh/eventbook/internal/client/config"
	"github.com/aka-Harsh/eventbook/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
