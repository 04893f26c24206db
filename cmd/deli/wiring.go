package main

import (
	"context"
	"fmt"

	"deli-cious/internal/config"
	"deli-cious/internal/database"
	"deli-cious/internal/menu"
	"deli-cious/internal/receipt"
	"deli-cious/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

func loadSignatures(cfg config.MenuConfig) (*menu.Menu, error) {
	if cfg.File == "" {
		signatures, err := menu.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in menu: %w", err)
		}
		return signatures, nil
	}
	return menu.LoadFile(cfg.File)
}

func openArchive(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(ctx, pool, logger); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// newReceiptStore writes receipts to the local directory and mirrors them to
// S3 and the order archive when those are enabled. An unavailable mirror is
// logged and skipped so the shop can still take orders.
func newReceiptStore(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (receipt.Store, func(), error) {
	primary := receipt.NewFileStore(cfg.Receipts.Dir, logger)
	cleanup := func() {}

	var mirrors []receipt.Store

	if cfg.S3.Enabled {
		s3Store, err := receipt.NewS3Store(ctx, cfg.S3.Bucket, cfg.S3.Region, cfg.S3.Prefix, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 receipt store, keeping receipts on local disk only")
		} else {
			mirrors = append(mirrors, s3Store)
		}
	} else {
		logger.Info().Msg("S3 receipt mirror disabled")
	}

	if cfg.Database.Enabled {
		pool, err := openArchive(ctx, cfg.Database, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("order archive unavailable, continuing without it")
		} else {
			cleanup = pool.Close
			repo := repository.NewOrderRepository(pool, logger)
			mirrors = append(mirrors, receipt.NewArchiveStore(repo, logger))
		}
	}

	if len(mirrors) == 0 {
		return primary, cleanup, nil
	}
	return receipt.NewMirrorStore(primary, mirrors, logger), cleanup, nil
}
