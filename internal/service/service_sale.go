// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dmarte/puntoventa/internal/adapter"
	"github.com/dmarte/puntoventa/internal/logger"
	"github.com/dmarte/puntoventa/internal/store"
	"github.com/dmarte/puntoventa/internal/validators"
	"github.com/dmarte/puntoventa/models"
)

// maxNumberAttempts bounds the remote issuance loop when the backend keeps
// answering with duplicate-key conflicts.
const maxNumberAttempts = 50

type saleService struct {
	products  store.ProductRepository
	sales     store.SaleRepository
	queue     store.QueueRepository
	sequences SequenceService
	remote    adapter.RemoteBackend
	conn      Connectivity
	valid     validators.Validator
	storeID   string
	logger    *logger.Logger
}

func NewSaleService(
	storages store.Storages,
	sequences SequenceService,
	remote adapter.RemoteBackend,
	conn Connectivity,
	storeID string,
	logger *logger.Logger,
) SaleService {
	return &saleService{
		products:  storages.Products,
		sales:     storages.Sales,
		queue:     storages.Queue,
		sequences: sequences,
		remote:    remote,
		conn:      conn,
		valid:     validators.NewPOSValidator(),
		storeID:   storeID,
		logger:    logger,
	}
}

// CreateSale runs the full sale workflow. Whatever happens on the network,
// a sale that enters this method leaves it persisted locally with its stock
// effects applied; only ErrEmptySale, ErrSequenceExhausted and local
// persistence failures abort it.
func (s *saleService) CreateSale(ctx context.Context, draft models.Sale) (models.Sale, error) {
	log := s.logger.With().Str("func", "saleService.CreateSale").Logger()

	if len(draft.Items) == 0 {
		return models.Sale{}, ErrEmptySale
	}

	sale := draft
	if err := s.valid.Validate(ctx, sale, validators.FieldDocumentType, validators.FieldItems, validators.FieldPaymentMethod); err != nil {
		return models.Sale{}, fmt.Errorf("invalid sale draft: %w", err)
	}
	sale.ID = uuid.NewString()
	sale.Synced = false
	if sale.StoreID == "" {
		sale.StoreID = s.storeID
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now().UTC()
	}
	normalizeSale(&sale)

	if s.conn.IsOnline() {
		number, err := s.issueRemoteNumber(ctx, sale.DocumentType)
		switch {
		case err == nil:
			sale.InvoiceNumber = number
		case errors.Is(err, ErrSequenceExhausted):
			return models.Sale{}, err
		default:
			log.Warn().Err(err).Msg("remote number issuance failed, falling back to local sequence")
			if errors.Is(err, adapter.ErrRemoteUnavailable) {
				s.conn.SetOnline(false)
			}
		}
	}

	if sale.InvoiceNumber == "" {
		number, err := s.sequences.NextLocalNumber(ctx, sale.DocumentType)
		if err != nil {
			return models.Sale{}, fmt.Errorf("issue local invoice number: %w", err)
		}
		sale.InvoiceNumber = number
	}

	s.resolveItemRefs(ctx, &sale)

	if err := s.sales.Save(ctx, sale); err != nil {
		return models.Sale{}, fmt.Errorf("persist sale locally: %w", err)
	}

	s.decrementLocalStock(ctx, sale)

	if !s.conn.IsOnline() {
		s.enqueueSale(ctx, sale)
		return sale, nil
	}

	if err := s.commitRemote(ctx, &sale); err != nil {
		log.Warn().Err(err).
			Str("sale_id", sale.ID).
			Msg("remote commit failed, sale queued for sync")
		if errors.Is(err, adapter.ErrRemoteUnavailable) {
			s.conn.SetOnline(false)
		}
		s.enqueueSale(ctx, sale)
	}

	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, id string) (models.Sale, error) {
	return s.sales.Get(ctx, id)
}

func (s *saleService) ListSales(ctx context.Context) ([]models.Sale, error) {
	return s.sales.GetAll(ctx)
}

// issueRemoteNumber asks the backend for the next invoice number, retrying
// only duplicate-key-class conflicts. Any other error aborts immediately so
// connectivity failures reach the fallback path fast.
func (s *saleService) issueRemoteNumber(ctx context.Context, typeCode string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		number, err := s.remote.GetNextInvoiceNumber(ctx, typeCode)
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

// resolveItemRefs blanks product references the local catalog does not
// recognize, so a stale or mistyped identifier is stored as a manual line
// instead of a dangling reference. Catalog read failures keep the reference
// as provided.
func (s *saleService) resolveItemRefs(ctx context.Context, sale *models.Sale) {
	log := s.logger.With().Str("func", "saleService.resolveItemRefs").Str("sale_id", sale.ID).Logger()

	for i := range sale.Items {
		item := &sale.Items[i]
		if item.ProductID == "" {
			continue
		}
		if _, err := s.products.Get(ctx, item.ProductID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Debug().
					Str("product_id", item.ProductID).
					Msg("unknown product reference, keeping line as manual entry")
				item.ProductID = ""
				continue
			}
			log.Error().Err(err).
				Str("product_id", item.ProductID).
				Msg("catalog lookup failed, keeping product reference")
		}
	}
}

// decrementLocalStock applies the sale's stock effects to the local catalog.
// Unrecognized products are skipped, and nothing here fails the sale.
func (s *saleService) decrementLocalStock(ctx context.Context, sale models.Sale) {
	log := s.logger.With().Str("func", "saleService.decrementLocalStock").Logger()

	for _, item := range sale.Items {
		if item.ProductID == "" {
			continue
		}
		if err := s.products.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			log.Error().Err(err).
				Str("sale_id", sale.ID).
				Str("product_id", item.ProductID).
				Msg("local stock decrement failed")
		}
	}
}

// commitRemote pushes the sale to the backend. A header-insert failure is
// returned so the caller can enqueue the snapshot; failures after the header
// landed are the accepted partial-commit window and are only logged, because
// replaying the snapshot would duplicate the sale.
func (s *saleService) commitRemote(ctx context.Context, sale *models.Sale) error {
	log := s.logger.With().Str("func", "saleService.commitRemote").Str("sale_id", sale.ID).Logger()

	if err := s.remote.InsertSale(ctx, *sale); err != nil {
		return fmt.Errorf("insert sale header: %w", err)
	}

	partial := false
	if err := s.remote.InsertSaleItems(ctx, sale.Items); err != nil {
		partial = true
		log.Error().Err(err).Msg("partial remote commit: sale header saved but line items failed")
	}
	for _, item := range sale.Items {
		if item.ProductID == "" {
			continue
		}
		if err := s.remote.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			partial = true
			log.Error().Err(err).
				Str("product_id", item.ProductID).
				Msg("partial remote commit: server stock decrement failed")
		}
	}
	if partial {
		log.Error().Str("invoice_number", sale.InvoiceNumber).
			Msg("sale left in partial remote state, not replayed")
	}

	if err := s.sales.MarkSynced(ctx, sale.ID, sale.InvoiceNumber); err != nil {
		log.Error().Err(err).Msg("failed to mark sale synced locally")
	} else {
		sale.Synced = true
	}

	if err := s.sequences.Reconcile(ctx, sale.DocumentType, sale.InvoiceNumber); err != nil {
		log.Error().Err(err).Msg("failed to reconcile sequence counter")
	}

	return nil
}

// enqueueSale stores the full sale snapshot as a pending CREATE. Queue
// failures are logged, not surfaced: the sale itself already succeeded.
func (s *saleService) enqueueSale(ctx context.Context, sale models.Sale) {
	log := s.logger.With().Str("func", "saleService.enqueueSale").Str("sale_id", sale.ID).Logger()

	payload, err := json.Marshal(sale)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal sale snapshot")
		return
	}

	if _, err = s.queue.Enqueue(ctx, models.SyncQueueItem{
		Collection: models.CollectionSales,
		Op:         models.OpCreate,
		Payload:    payload,
	}); err != nil {
		log.Error().Err(err).Msg("failed to enqueue sale for sync")
	}
}

// normalizeSale stamps line items with the sale id and fills in totals the
// caller left at zero.
func normalizeSale(sale *models.Sale) {
	var subtotal, tax float64
	for i := range sale.Items {
		item := &sale.Items[i]
		item.SaleID = sale.ID
		if item.LineTotal == 0 {
			item.LineTotal = float64(item.Quantity) * item.UnitPrice
		}
		subtotal += item.LineTotal
		tax += item.LineTotal * item.TaxRate
	}
	if sale.Subtotal == 0 {
		sale.Subtotal = subtotal
	}
	if sale.Tax == 0 {
		sale.Tax = tax
	}
	if sale.Total == 0 {
		sale.Total = sale.Subtotal + sale.Tax
	}
	if sale.Change == 0 && sale.AmountPaid > sale.Total {
		sale.Change = sale.AmountPaid - sale.Total
	}
}
