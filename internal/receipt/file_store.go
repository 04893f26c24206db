package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"deli-cious/internal/model"

	"github.com/rs/zerolog"
)

// fileStore implements Store by writing one plain-text file per order.
type fileStore struct {
	dir    string
	create func(path string) (fileWriter, error)
	logger zerolog.Logger
}

type fileWriter interface {
	WriteString(s string) (int, error)
	Close() error
}

// createExclusive opens path for writing and fails if it already exists.
func createExclusive(path string) (fileWriter, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}

// NewFileStore creates a receipt store rooted at dir. The directory is
// created on first save.
func NewFileStore(dir string, logger zerolog.Logger) Store {
	return &fileStore{
		dir:    dir,
		create: createExclusive,
		logger: logger.With().Str("component", "receipt-file-store").Logger(),
	}
}

// Save writes the receipt text to <dir>/<receipt file name>.
func (s *fileStore) Save(ctx context.Context, receipt *model.Receipt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.Error().Err(err).Str("dir", s.dir).Msg("failed to create receipts directory")
		return "", fmt.Errorf("failed to create receipts directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, receipt.FileName())

	file, err := s.create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", path).Msg("failed to create receipt file")
		return "", fmt.Errorf("failed to create receipt file %s: %w", path, err)
	}

	if err := writeAndClose(file, receipt.Text); err != nil {
		// leave no partial receipt behind
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("file", path).Msg("failed to remove partial receipt file")
		}
		s.logger.Error().Err(err).Str("file", path).Msg("failed to write receipt file")
		return "", fmt.Errorf("failed to write receipt file %s: %w", path, err)
	}

	s.logger.Info().
		Str("file", path).
		Str("order_id", receipt.OrderID.String()).
		Msg("receipt saved")

	return path, nil
}

func writeAndClose(file fileWriter, text string) error {
	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
