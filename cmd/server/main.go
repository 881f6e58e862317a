package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/api"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/config"
	"github.com/evanyli007/CanIBuyanAI-with-Hint-AI/internal/factory"
)

func main() {
	// Set up logging with JSON output
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Settings come from WHEEL_* environment variables, a .env file and
	// an optional config file
	cfg, err := config.Load(config.New(), os.Getenv("WHEEL_CONFIG"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger = logger.Level(cfg.LogLevel)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create application factory
	app, err := factory.New(ctx, factory.FromConfig(cfg, logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create application")
	}
	defer func() { _ = app.Close() }()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BotService:     app.BotService,
		Wheel:          app.Wheel,
		RoundDefaults:  cfg.Round,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	if err := server.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("server error")
		os.Exit(1)
	}

	logger.Info().Msg("server stopped")
}
