package main

import (
	"fmt"

	"deli-cious/internal/config"
	"deli-cious/internal/console"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the price list and signature sandwiches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		signatures, err := loadSignatures(cfg.Menu)
		if err != nil {
			return err
		}

		console.PrintCatalog(cmd.OutOrStdout(), signatures)
		return nil
	},
}
