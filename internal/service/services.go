package service

import (
	"time"

	"github.com/dmarte/puntoventa/internal/adapter"
	"github.com/dmarte/puntoventa/internal/config"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/store"
)

type Services struct {
	Sequences SequenceService
	Sales     SaleService
	Catalog   CatalogService
	Sync      SyncManager
}

func NewServices(
	storages store.Storages,
	remote adapter.RemoteBackend,
	conn Connectivity,
	cfg config.POSConfig,
	logger *logger.Logger,
) *Services {
	sequences := NewSequenceService(storages.Settings, storages.Reference, logger)
	retention := time.Duration(cfg.Sync.RetentionDays) * 24 * time.Hour

	return &Services{
		Sequences: sequences,
		Sales:     NewSaleService(storages, sequences, remote, conn, cfg.App.StoreID, logger),
		Catalog:   NewCatalogService(storages, remote, conn, cfg.App.StoreID, logger),
		Sync:      NewSyncManager(storages, remote, sequences, conn, cfg.App.StoreID, retention, logger),
	}
}
