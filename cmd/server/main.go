// @title           Roofsite API
// @version         1.0
// @description     Lead capture and admin data viewer for the roofing site.
// @schemes         http https
// @BasePath        /api
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"roofsite/internal/config"
	"roofsite/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roofsite",
		Short:         "Roofing marketing site and admin data viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	root.AddCommand(newServeCmd(), newMigrateCmd(), newPurgeAttemptsCmd(), newHashPasswordCmd())
	return root
}

// bootstrap loads .env (when present) and the configuration, then builds the
// root logger.
func bootstrap() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, zerolog.Nop(), fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	return cfg, logging.Setup(cfg.Log), nil
}
