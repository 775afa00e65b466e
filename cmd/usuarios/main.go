package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alfagnish/usuarios/internal/config"
	"github.com/alfagnish/usuarios/internal/events"
	"github.com/alfagnish/usuarios/internal/logger"
	"github.com/alfagnish/usuarios/internal/server"
	"github.com/alfagnish/usuarios/internal/users"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Load configuration from environment variables and the config file.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel, cfg.Development())

	log.Info().
		Str("app", cfg.App.Name).
		Str("db_host", cfg.App.ConfigDB.Host).
		Str("env", cfg.Env).
		Str("static_dir", cfg.StaticDir).
		Msg("config loaded")
	if cfg.Development() {
		log.Debug().Msg("request logging enabled")
	}

	// 2. Create the in-memory store and the event hub.
	store := users.NewMemoryStore(cfg.Seed())
	hub := events.NewHub()

	// 3. Set up the chi router with all handlers.
	handler := server.New(cfg, store, hub)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      0, // websocket feeds stay open
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Msgf("listening on http://localhost%s", cfg.ListenAddr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-done
	log.Info().Msg("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
	}

	log.Info().Msg("server stopped")
}
