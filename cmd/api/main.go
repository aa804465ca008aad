package main

import (
	"context"

	"moneta-backend/internal/app"
	"moneta-backend/internal/config"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}

	fiberApp, db, rdb, err := app.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	// Verify connections before serving.
	if db != nil {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal().Err(err).Msg("catalog db handle")
		}
		if err := sqlDB.Ping(); err != nil {
			log.Fatal().Err(err).Msg("catalog db ping")
		}
		log.Info().Str("path", cfg.CatalogDBPath).Msg("Catalog (sqlite) connected")
	}
	if rdb != nil {
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis ping")
		}
		log.Info().Msg("Redis connected")
	}

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("Server starting")
	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
