package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"smokestat/app"
	"smokestat/internal"
	"smokestat/internal/config"
	"smokestat/internal/errors"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

func main() {
	logger := internal.NewDefaultLogger()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "code", errors.GetCode(err), "error", err)
		os.Exit(1)
	}
	logger = internal.NewLogger(os.Stderr, internal.ParseLogLevel(appConfig.Logging.Level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := app.NewAnalysisService(appConfig, logger, clockwork.NewRealClock(), os.Stdout)
	if _, err := service.Run(ctx); err != nil {
		logger.Error("analysis failed", "code", errors.GetCode(err), "error", err)
		stop()
		os.Exit(1)
	}
}
