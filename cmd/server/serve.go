package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "roofsite/docs"
	"roofsite/internal/api"
	"roofsite/internal/auth"
	"roofsite/internal/config"
	"roofsite/internal/database"
	"roofsite/internal/inspections"
	"roofsite/internal/web"
	"roofsite/internal/websocket"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := database.New(cfg.DB.URL)
	defer db.Close()

	attempts, closeAttempts := newAttemptStore(cfg, db, logger)
	defer closeAttempts()

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	server := api.NewServer(cfg, api.Deps{
		Browser:  database.NewBrowser(db, logger),
		Health:   db,
		Leads:    inspections.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceRoleKey),
		Attempts: attempts,
		Hub:      hub,
	}, logger)

	r := server.Router()
	web.MountRoutes(r, web.NewHandler())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}()

	if cfg.DB.URL == "" {
		logger.Warn().Msg("DATABASE_URL is not set; admin data endpoints will report a configuration error")
	}
	logger.Info().Str("addr", cfg.Server.Addr).Str("environment", cfg.Environment).Msg("server listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// newAttemptStore picks the login limiter backend. The postgres backend
// falls back to memory when no database is configured.
func newAttemptStore(cfg *config.Config, db *database.DB, logger zerolog.Logger) (auth.AttemptStore, func()) {
	policy := auth.NewLimitPolicy(cfg.RateLimit.Attempts, cfg.RateLimit.Window)

	switch cfg.RateLimit.Backend {
	case "postgres":
		if cfg.DB.URL != "" {
			return database.NewAttemptStore(db, policy), func() {}
		}
		logger.Warn().Msg("ratelimit backend postgres needs DATABASE_URL; using memory")
	case "memory", "":
	default:
		logger.Warn().Str("backend", cfg.RateLimit.Backend).Msg("unknown ratelimit backend; using memory")
	}

	mem := auth.NewMemoryAttemptStore(policy)
	return mem, mem.Stop
}
