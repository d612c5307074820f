// Command sheetinit prepares the donation sheet once, outside the API:
// it ensures the Material Donations tab exists with its styled header row.
// Intended to run once per deployment.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"canoesite/internal/adapter/repo"
	"canoesite/internal/domain"
	"canoesite/internal/infra"
	"canoesite/internal/sheets"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var store domain.DonationStore
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		store = repo.NewDonationStore(pool)
	} else {
		store, err = sheets.NewStore(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create sheets client")
		}
	}

	sheetID, err := store.EnsureInitialized(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("sheet initialization failed")
	}
	logger.Info().Int64("sheet_id", sheetID).Msg("donation sheet initialized")
}
