package receipt

import (
	"context"
	"fmt"

	"deli-cious/internal/model"
	"deli-cious/internal/repository"

	"github.com/rs/zerolog"
)

// archiveStore implements Store by recording paid orders in the order archive.
type archiveStore struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewArchiveStore creates a store backed by the PostgreSQL order archive.
func NewArchiveStore(repo repository.OrderRepository, logger zerolog.Logger) Store {
	return &archiveStore{
		repo:   repo,
		logger: logger.With().Str("component", "receipt-archive-store").Logger(),
	}
}

// Save inserts the order and its lines in one transaction.
func (s *archiveStore) Save(ctx context.Context, receipt *model.Receipt) (location string, err error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to archive order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.repo.CreateOrder(ctx, tx, receipt); err != nil {
		return "", fmt.Errorf("failed to archive order: %w", err)
	}

	if err = s.repo.CreateOrderItems(ctx, tx, receipt.OrderID, receipt.Items); err != nil {
		return "", fmt.Errorf("failed to archive order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", receipt.OrderID.String()).Msg("failed to commit transaction")
		return "", fmt.Errorf("failed to archive order: %w", err)
	}

	s.logger.Info().
		Str("order_id", receipt.OrderID.String()).
		Int("item_count", len(receipt.Items)).
		Msg("order archived")

	return "orders/" + receipt.OrderID.String(), nil
}
