package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/content-mock-backend/api"
	"github.com/rpupo63/content-mock-backend/config"
	"github.com/rpupo63/content-mock-backend/database"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Info().Msg("Initializing app...")

	// Load environment variables from .env file
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg("Error loading .env file")
	}

	settings := config.Resolve(config.New())
	zerolog.SetGlobalLevel(settings.LogLevel)

	fixtures, err := database.LoadFixtures(settings.FixturesFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", settings.FixturesFile).Msg("Error loading fixtures")
	}

	db := database.New(fixtures)
	log.Info().Interface("collections", db.Counts()).Msg("Collections seeded")

	server, err := api.NewServer(db, settings)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	// Listen for interrupt signals to gracefully shutdown the server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Closing server")
		stop()
		os.Exit(1)
	}
}
