package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/freshtrack/freshtrack/internal/cli"
	"github.com/freshtrack/freshtrack/internal/config"
	"github.com/freshtrack/freshtrack/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
