package repository

import (
	"context"
	"errors"
	"fmt"

	"deli-cious/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a paid order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error {
	query := `
		INSERT INTO orders (id, payment_method, total, receipt_text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := tx.Exec(ctx, query,
		receipt.OrderID,
		receipt.PaymentMethod,
		receipt.Total,
		receipt.Text,
		receipt.IssuedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", receipt.OrderID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", receipt.OrderID.String()).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts the receipt lines of an order within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.ReceiptItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (id, order_id, position, kind, name, price, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		details := item.Details
		if details == nil {
			details = []string{}
		}
		batch.Queue(query, uuid.New(), orderID, item.Position, item.Kind, item.Name, item.Price, details)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		_, err := results.Exec()
		if err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orderID.String()).
				Int("position", items[i].Position).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// GetByID retrieves an archived order with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	orderQuery := `
		SELECT id, payment_method, total, receipt_text, created_at
		FROM orders
		WHERE id = $1
	`

	var receipt model.Receipt
	err := r.pool.QueryRow(ctx, orderQuery, id).Scan(
		&receipt.OrderID,
		&receipt.PaymentMethod,
		&receipt.Total,
		&receipt.Text,
		&receipt.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	itemsQuery := `
		SELECT position, kind, name, price, details
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", id.String()).
			Msg("failed to query order items")
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.ReceiptItem
		if err := rows.Scan(&item.Position, &item.Kind, &item.Name, &item.Price, &item.Details); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		receipt.Items = append(receipt.Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return &receipt, nil
}

// ListRecent returns the most recent orders, newest first, without items.
func (r *orderRepository) ListRecent(ctx context.Context, limit int) ([]model.Receipt, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT id, payment_method, total, receipt_text, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	receipts := make([]model.Receipt, 0, limit)
	for rows.Next() {
		var receipt model.Receipt
		if err := rows.Scan(
			&receipt.OrderID,
			&receipt.PaymentMethod,
			&receipt.Total,
			&receipt.Text,
			&receipt.IssuedAt,
		); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		receipts = append(receipts, receipt)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	r.logger.Debug().Int("count", len(receipts)).Msg("recent orders retrieved")

	return receipts, nil
}
