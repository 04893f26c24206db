package repository

import (
	"context"

	"deli-cious/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepository defines the interface for the completed-order archive.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a paid order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error

	// CreateOrderItems inserts the receipt lines of an order within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.ReceiptItem) error

	// GetByID retrieves an archived order with its items.
	// Returns nil without error when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error)

	// ListRecent returns the most recent orders, newest first, without items.
	ListRecent(ctx context.Context, limit int) ([]model.Receipt, error)
}
