package receipt

import (
	"context"

	"deli-cious/internal/model"

	"github.com/rs/zerolog"
)

// mirrorStore writes to a primary store and copies to best-effort mirrors.
type mirrorStore struct {
	primary Store
	mirrors []Store
	logger  zerolog.Logger
}

// NewMirrorStore creates a store whose result is the primary's. Mirror
// failures are logged and never fail a checkout.
func NewMirrorStore(primary Store, mirrors []Store, logger zerolog.Logger) Store {
	return &mirrorStore{
		primary: primary,
		mirrors: mirrors,
		logger:  logger.With().Str("component", "receipt-mirror-store").Logger(),
	}
}

// Save writes to the primary store first; mirrors are skipped if it fails.
func (s *mirrorStore) Save(ctx context.Context, receipt *model.Receipt) (string, error) {
	location, err := s.primary.Save(ctx, receipt)
	if err != nil {
		return "", err
	}

	for i, mirror := range s.mirrors {
		mirrored, err := mirror.Save(ctx, receipt)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Int("mirror", i).
				Str("order_id", receipt.OrderID.String()).
				Msg("failed to mirror receipt, keeping primary copy only")
			continue
		}

		s.logger.Debug().
			Int("mirror", i).
			Str("location", mirrored).
			Msg("receipt mirrored")
	}

	return location, nil
}
