package main

import (
	"errors"
	"fmt"
	"os"

	"deli-cious/internal/config"
	"deli-cious/internal/model"
	"deli-cious/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	ordersLimit int
	ordersID    string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List completed orders from the PostgreSQL archive",
	Long: `Lists the most recent archived orders, or prints the full receipt of
one order when --id is given. Requires DB_ENABLED=true.`,
	Args: cobra.NoArgs,
	RunE: listOrders,
}

func init() {
	ordersCmd.Flags().IntVarP(&ordersLimit, "limit", "n", 10, "Number of orders to list")
	ordersCmd.Flags().StringVar(&ordersID, "id", "", "Print the receipt of a single order")
}

func listOrders(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if !cfg.Database.Enabled {
		return errors.New("order archive is disabled (set DB_ENABLED=true)")
	}

	logger := config.NewLogger(cfg.Logger, os.Stderr)
	ctx := cmd.Context()

	pool, err := openArchive(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewOrderRepository(pool, logger)
	out := cmd.OutOrStdout()

	if ordersID != "" {
		id, err := uuid.Parse(ordersID)
		if err != nil {
			return fmt.Errorf("invalid order id %q: %w", ordersID, err)
		}

		rcpt, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if rcpt == nil {
			return fmt.Errorf("order %s: %w", id, model.ErrItemNotFound)
		}

		fmt.Fprint(out, rcpt.Text)
		return nil
	}

	receipts, err := repo.ListRecent(ctx, ordersLimit)
	if err != nil {
		return err
	}

	if len(receipts) == 0 {
		fmt.Fprintln(out, "No archived orders.")
		return nil
	}

	for _, r := range receipts {
		fmt.Fprintf(out, "%s  %s  %-6s %8s\n",
			r.IssuedAt.Local().Format("2006-01-02 15:04:05"),
			r.OrderID,
			r.PaymentMethod,
			model.FormatPrice(r.Total),
		)
	}
	return nil
}
