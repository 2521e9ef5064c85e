package main

import (
	"context"
	"os"

	"github.com/Rrens/content-portal/internal/config"
	"github.com/Rrens/content-portal/internal/logging"
	"github.com/Rrens/content-portal/internal/repository/mongo"
	"github.com/Rrens/content-portal/internal/repository/postgres"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Applies the postgres schema, or creates the mongo indexes
func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := logging.Setup(cfg.Logging, os.Getenv("ENV")); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pg := cfg.Store.Postgres
		log.Info().Str("host", pg.Host).Int("port", pg.Port).Str("source", pg.MigrationsURL).Msg("Running postgres migrations")

		if err := postgres.RunMigrations(pg.DSN(), pg.MigrationsURL); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}

	default:
		log.Info().Str("database", cfg.Store.Mongo.Database).Msg("Ensuring mongo indexes")

		store, err := mongo.Connect(ctx, cfg.Store.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to mongo")
		}
		defer store.Close(ctx)

		if err := store.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to create indexes")
		}
		log.Info().Msg("Mongo indexes ready")
	}
}
