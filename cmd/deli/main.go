package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"deli-cious/internal/config"
	"deli-cious/internal/console"
	"deli-cious/internal/service"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deli",
	Short: "DELI-cious sandwich shop point of sale",
	Long: `Takes sandwich, drink and chips orders at the counter, prices them,
accepts cash and writes a receipt file for every completed order.

Configuration is read from the environment and an optional .env file.
Receipts can additionally be mirrored to S3 (S3_ENABLED) and archived
in PostgreSQL (DB_ENABLED).`,
	SilenceUsage: true,
	RunE:         runShop,
}

func init() {
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(ordersCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runShop(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, os.Stderr)
	logger.Info().Msg("starting DELI-cious")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	signatures, err := loadSignatures(cfg.Menu)
	if err != nil {
		return err
	}

	store, cleanup, err := newReceiptStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	orderService := service.NewOrderService(signatures, store, logger)
	app := console.NewApp(orderService, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	if err := app.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("interrupted, shutting down")
			return nil
		}
		return err
	}

	logger.Info().Msg("DELI-cious stopped")
	return nil
}
