package receipt

import (
	"context"

	"deli-cious/internal/model"
)

// Store persists the receipt of a paid order.
type Store interface {
	// Save writes the receipt and returns where it was stored.
	Save(ctx context.Context, receipt *model.Receipt) (string, error)
}
