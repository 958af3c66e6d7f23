// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmarte/puntoventa/internal/adapter"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/models"
)

type syncManager struct {
	storages  store.Storages
	remote    adapter.RemoteBackend
	sequences SequenceService
	conn      Connectivity
	storeID   string
	retention time.Duration
	logger    *logger.Logger

	inProgress atomic.Bool
}

func NewSyncManager(
	storages store.Storages,
	remote adapter.RemoteBackend,
	sequences SequenceService,
	conn Connectivity,
	storeID string,
	retention time.Duration,
	logger *logger.Logger,
) SyncManager {
	return &syncManager{
		storages:  storages,
		remote:    remote,
		sequences: sequences,
		conn:      conn,
		storeID:   storeID,
		retention: retention,
		logger:    logger,
	}
}

// Sync runs one full pass: pull, push, retention sweep. A concurrent call
// while a pass is running is dropped, not queued.
func (m *syncManager) Sync(ctx context.Context) {
	if !m.inProgress.CompareAndSwap(false, true) {
		m.logger.Debug().Str("func", "syncManager.Sync").Msg("sync already in progress, skipping")
		return
	}
	defer m.inProgress.Store(false)

	if !m.conn.IsOnline() {
		return
	}

	started := time.Now()
	m.pull(ctx)
	m.push(ctx)
	m.sweep(ctx)

	m.logger.Info().
		Str("func", "syncManager.Sync").
		Dur("elapsed", time.Since(started)).
		Msg("sync pass finished")
}

// pull refreshes the local reference caches from the backend, remote wins.
// The first network failure abandons the phase; the push phase still runs so
// pending sales are not held hostage by one broken endpoint.
func (m *syncManager) pull(ctx context.Context) {
	log := m.logger.With().Str("func", "syncManager.pull").Logger()

	products, err := m.remote.FetchProducts(ctx, m.storeID)
	if err != nil {
		m.skipPull(log, err)
		return
	}
	if err = m.storages.Products.Save(ctx, products...); err != nil {
		log.Error().Err(err).Msg("failed to store pulled products")
	}

	categories, err := m.remote.FetchCategories(ctx, m.storeID)
	if err != nil {
		m.skipPull(log, err)
		return
	}
	if err = m.storages.Reference.SaveCategories(ctx, categories...); err != nil {
		log.Error().Err(err).Msg("failed to store pulled categories")
	}

	customers, err := m.remote.FetchCustomers(ctx, m.storeID)
	if err != nil {
		m.skipPull(log, err)
		return
	}
	if err = m.storages.Reference.SaveCustomers(ctx, customers...); err != nil {
		log.Error().Err(err).Msg("failed to store pulled customers")
	}

	types, err := m.remote.FetchDocumentTypes(ctx, m.storeID)
	if err != nil {
		m.skipPull(log, err)
		return
	}
	if err = m.storages.Reference.SaveDocumentTypes(ctx, types...); err != nil {
		log.Error().Err(err).Msg("failed to store pulled document types")
	}

	sequences, err := m.remote.FetchSequences(ctx, m.storeID)
	if err != nil {
		m.skipPull(log, err)
		return
	}
	if err = m.sequences.SeedFromRemote(ctx, sequences); err != nil {
		log.Error().Err(err).Msg("failed to seed sequence counters")
	}
}

func (m *syncManager) skipPull(log zerolog.Logger, err error) {
	log.Warn().Err(err).Msg("pull phase abandoned")
	if errors.Is(err, adapter.ErrRemoteUnavailable) {
		m.conn.SetOnline(false)
	}
}

// push drains the pending queue in FIFO order. Failures are isolated per
// item: the error is recorded, the item stays pending and the drain moves
// on, except transport loss which ends the phase.
func (m *syncManager) push(ctx context.Context) {
	log := m.logger.With().Str("func", "syncManager.push").Logger()

	if !m.conn.IsOnline() {
		return
	}

	items, err := m.storages.Queue.ListPending(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list pending queue items")
		return
	}
	items = append(items, m.requeueOrphans(ctx, items)...)

	for _, item := range items {
		if err = m.dispatch(ctx, item); err != nil {
			log.Error().Err(err).
				Int64("item_id", item.ID).
				Str("collection", item.Collection).
				Str("op", item.Op).
				Msg("push failed, item stays pending")

			if markErr := m.storages.Queue.MarkError(ctx, item.ID, err.Error()); markErr != nil {
				log.Error().Err(markErr).Int64("item_id", item.ID).Msg("failed to record push error")
			}
			if errors.Is(err, adapter.ErrRemoteUnavailable) {
				m.conn.SetOnline(false)
				return
			}
			continue
		}

		if markErr := m.storages.Queue.MarkSynced(ctx, item.ID); markErr != nil {
			log.Error().Err(markErr).Int64("item_id", item.ID).Msg("failed to mark queue item synced")
		}
	}
}

// requeueOrphans re-enqueues unsynced sales that have no pending queue row.
// Enqueue failures during sale creation are logged rather than surfaced, so
// a storage hiccup can leave a sale stranded locally; this picks it up on
// the next pass. A sale whose remote commit landed but whose local
// MarkSynced failed is also resurfaced; the backend's primary key rejects
// the duplicate insert.
func (m *syncManager) requeueOrphans(ctx context.Context, pending []models.SyncQueueItem) []models.SyncQueueItem {
	log := m.logger.With().Str("func", "syncManager.requeueOrphans").Logger()

	queued := make(map[string]struct{}, len(pending))
	for _, item := range pending {
		if item.Collection != models.CollectionSales {
			continue
		}
		var ref struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(item.Payload, &ref); err == nil && ref.ID != "" {
			queued[ref.ID] = struct{}{}
		}
	}

	sales, err := m.storages.Sales.GetUnsynced(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list unsynced sales")
		return nil
	}

	var requeued []models.SyncQueueItem
	for _, sale := range sales {
		if _, ok := queued[sale.ID]; ok {
			continue
		}

		payload, err := json.Marshal(sale)
		if err != nil {
			log.Error().Err(err).Str("sale_id", sale.ID).Msg("failed to marshal stranded sale")
			continue
		}
		item := models.SyncQueueItem{
			Collection: models.CollectionSales,
			Op:         models.OpCreate,
			Payload:    payload,
		}
		id, err := m.storages.Queue.Enqueue(ctx, item)
		if err != nil {
			log.Error().Err(err).Str("sale_id", sale.ID).Msg("failed to requeue stranded sale")
			continue
		}
		item.ID = id

		log.Warn().Str("sale_id", sale.ID).Int64("item_id", id).
			Msg("requeued unsynced sale missing from the pending queue")
		requeued = append(requeued, item)
	}

	return requeued
}

func (m *syncManager) dispatch(ctx context.Context, item models.SyncQueueItem) error {
	switch item.Collection {
	case models.CollectionSales:
		return m.pushSale(ctx, item)
	case models.CollectionProducts:
		return m.pushProduct(ctx, item)
	case models.CollectionCustomers:
		return m.pushCustomer(ctx, item)
	case models.CollectionCategories:
		return m.pushCategory(ctx, item)
	default:
		return fmt.Errorf("unsupported queue collection %q", item.Collection)
	}
}

// pushSale replays a queued sale. The provisional invoice number is
// discarded: the backend issues the real one at push time. Failures after
// the header insert are the accepted partial window and do not keep the
// item pending, because replaying it would duplicate the sale.
func (m *syncManager) pushSale(ctx context.Context, item models.SyncQueueItem) error {
	log := m.logger.With().Str("func", "syncManager.pushSale").Int64("item_id", item.ID).Logger()

	if item.Op != models.OpCreate {
		return fmt.Errorf("unsupported sale operation %q", item.Op)
	}

	var sale models.Sale
	if err := json.Unmarshal(item.Payload, &sale); err != nil {
		return fmt.Errorf("decode sale payload: %w", err)
	}

	number, err := m.issueNumber(ctx, sale.DocumentType)
	if err != nil {
		return fmt.Errorf("issue invoice number: %w", err)
	}
	sale.InvoiceNumber = number

	if err = m.remote.InsertSale(ctx, sale); err != nil {
		return fmt.Errorf("insert sale header: %w", err)
	}

	if err = m.remote.InsertSaleItems(ctx, sale.Items); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).
			Msg("partial remote commit: sale header saved but line items failed")
	}
	for _, line := range sale.Items {
		if line.ProductID == "" {
			continue
		}
		if err = m.remote.DecrementStock(ctx, line.ProductID, line.Quantity); err != nil {
			log.Error().Err(err).
				Str("sale_id", sale.ID).
				Str("product_id", line.ProductID).
				Msg("partial remote commit: server stock decrement failed")
		}
	}

	if err = m.storages.Sales.MarkSynced(ctx, sale.ID, number); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("failed to mark sale synced locally")
	}
	if err = m.sequences.Reconcile(ctx, sale.DocumentType, number); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("failed to reconcile sequence counter")
	}

	return nil
}

func (m *syncManager) issueNumber(ctx context.Context, typeCode string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := m.remote.GetNextInvoiceNumber(ctx, typeCode)
		if err == nil {
			return number, nil
		}
		if !errors.Is(err, adapter.ErrDuplicateKey) {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("%w: type %s after %d attempts: %w", ErrSequenceExhausted, typeCode, maxNumberAttempts, lastErr)
}

func (m *syncManager) pushProduct(ctx context.Context, item models.SyncQueueItem) error {
	var product models.Product
	if err := json.Unmarshal(item.Payload, &product); err != nil {
		return fmt.Errorf("decode product payload: %w", err)
	}

	switch item.Op {
	case models.OpCreate:
		return m.remote.CreateProduct(ctx, product)
	case models.OpUpdate:
		return m.remote.UpdateProduct(ctx, product)
	case models.OpDelete:
		return m.remote.DeleteProduct(ctx, product.ID)
	default:
		return fmt.Errorf("unsupported product operation %q", item.Op)
	}
}

func (m *syncManager) pushCustomer(ctx context.Context, item models.SyncQueueItem) error {
	var customer models.Customer
	if err := json.Unmarshal(item.Payload, &customer); err != nil {
		return fmt.Errorf("decode customer payload: %w", err)
	}

	switch item.Op {
	case models.OpCreate:
		return m.remote.CreateCustomer(ctx, customer)
	case models.OpUpdate:
		return m.remote.UpdateCustomer(ctx, customer)
	case models.OpDelete:
		return m.remote.DeleteCustomer(ctx, customer.ID)
	default:
		return fmt.Errorf("unsupported customer operation %q", item.Op)
	}
}

func (m *syncManager) pushCategory(ctx context.Context, item models.SyncQueueItem) error {
	var category models.Category
	if err := json.Unmarshal(item.Payload, &category); err != nil {
		return fmt.Errorf("decode category payload: %w", err)
	}

	switch item.Op {
	case models.OpCreate:
		return m.remote.CreateCategory(ctx, category)
	case models.OpUpdate:
		return m.remote.UpdateCategory(ctx, category)
	case models.OpDelete:
		return m.remote.DeleteCategory(ctx, category.ID)
	default:
		return fmt.Errorf("unsupported category operation %q", item.Op)
	}
}

// sweep removes confirmed queue rows past the retention window.
func (m *syncManager) sweep(ctx context.Context) {
	log := m.logger.With().Str("func", "syncManager.sweep").Logger()

	purged, err := m.storages.Queue.PurgeSynced(ctx, time.Now().Add(-m.retention))
	if err != nil {
		log.Error().Err(err).Msg("retention sweep failed")
		return
	}
	if purged > 0 {
		log.Info().Int64("purged", purged).Msg("purged confirmed queue items")
	}
}
