package main

import (
	"errors"
	"fmt"
	"os"

	"deli-cious/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Check the archive database connection and apply the schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if !cfg.Database.Enabled {
			return errors.New("order archive is disabled (set DB_ENABLED=true)")
		}

		logger := config.NewLogger(cfg.Logger, os.Stderr)

		pool, err := openArchive(cmd.Context(), cfg.Database, logger)
		if err != nil {
			return err
		}
		defer pool.Close()

		var dbName string
		if err := pool.QueryRow(cmd.Context(), "SELECT current_database()").Scan(&dbName); err != nil {
			return fmt.Errorf("failed to query database name: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s; order archive schema is up to date.\n", dbName)
		return nil
	},
}
