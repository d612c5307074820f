package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"canoesite/internal/adapter/repo"
	"canoesite/internal/domain"
	"canoesite/internal/http/handlers"
	"canoesite/internal/http/httpapi"
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

	ctx := context.Background()

	// Google Sheets is the default store; DATABASE_URL switches to Postgres
	// behind the same interface.
	var store domain.DonationStore
	if cfg.DatabaseURL != "" {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		store = repo.NewDonationStore(pool)
		logger.Info().Msg("using postgres donation store")
	} else {
		store, err = sheets.NewStore(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create sheets client")
		}
		if !cfg.Google.Complete() {
			logger.Warn().Msg("google service account credentials incomplete; donation submissions will fail")
		}
	}

	app := handlers.NewApp(store, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
