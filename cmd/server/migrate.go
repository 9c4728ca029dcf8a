package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"roofsite/internal/auth"
	"roofsite/internal/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.DB.URL == "" {
				return errors.New("DATABASE_URL is not set")
			}

			db := database.New(cfg.DB.URL)
			defer db.Close()

			if err := database.RunMigrations(cmd.Context(), db); err != nil {
				return err
			}
			logger.Info().Msg("migrations applied")
			return nil
		},
	}
}

func newPurgeAttemptsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge-attempts",
		Short: "Delete expired login attempt rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.DB.URL == "" {
				return errors.New("DATABASE_URL is not set")
			}

			db := database.New(cfg.DB.URL)
			defer db.Close()

			store := database.NewAttemptStore(db, auth.NewLimitPolicy(cfg.RateLimit.Attempts, cfg.RateLimit.Window))
			n, err := store.PurgeAttempts(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			logger.Info().Int64("deleted", n).Msg("expired login attempts purged")
			return nil
		},
	}
}
