package store

import (
	"context"
	"fmt"

	"github.com/dmarte/puntoventa/internal/config"
	"github.com/dmarte/puntoventa/internal/logger"
)

// Storages groups all local collections into a single value that can be
// passed around the service layer.
type Storages struct {
	// Products is the locally cached product catalog.
	Products ProductRepository
	// Sales holds local sale records with their line items.
	Sales SaleRepository
	// Reference holds the pulled caches: categories, customers, document
	// types.
	Reference ReferenceRepository
	// Queue is the durable pending-operation queue.
	Queue QueueRepository
	// Settings is the JSON key-value collection (sequence counters, cached
	// profile).
	Settings SettingsRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Open and migration failures are wrapped in [ErrStorageUnavailable] so the
// caller can degrade to online-only mode instead of treating the condition
// as a generic I/O error.
func NewStorages(cfg config.POSStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return &Storages{
		Products:  NewProductRepository(db, logger),
		Sales:     NewSaleRepository(db, logger),
		Reference: NewReferenceRepository(db, logger),
		Queue:     NewQueueRepository(db, logger),
		Settings:  NewSettingsRepository(db, logger),
	}, nil
}
