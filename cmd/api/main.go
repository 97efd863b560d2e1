package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/shoplane/commerce-api/internal/api"
	"github.com/shoplane/commerce-api/internal/infrastructure/config"
	"github.com/shoplane/commerce-api/internal/infrastructure/db/postgres"
	"github.com/shoplane/commerce-api/internal/infrastructure/db/redis"
	"github.com/shoplane/commerce-api/pkg/logger"
)

func main() {
	// Local development convenience; in deployed environments the variables
	// come from the orchestrator.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{Service: "commerce-api"})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("loading configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "commerce-api",
	})

	ctx := context.Background()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("running migrations")
	}

	rdb, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to redis")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
