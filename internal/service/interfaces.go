// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package service

import (
	"context"

	"github.com/dmarte/puntoventa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Connectivity is the slice of the connectivity monitor the services need:
// read the current belief and report observed failures.
type Connectivity interface {
	IsOnline() bool
	SetOnline(online bool)
}

// SequenceService issues provisional invoice numbers while the terminal is
// offline and keeps the local counters from ever falling behind numbers the
// backend has confirmed.
type SequenceService interface {
	// NextLocalNumber issues the next provisional number for the given
	// document-type identifier, which may be an opaque backend id or the
	// short human code.
	NextLocalNumber(ctx context.Context, typeIdent string) (string, error)
	// Reconcile raises the local counter to the numeric suffix of a
	// server-confirmed invoice number. It never lowers a counter.
	Reconcile(ctx context.Context, typeIdent string, confirmedNumber string) error
	// SeedFromRemote raises local counters from the backend's sequence
	// table during the pull phase.
	SeedFromRemote(ctx context.Context, sequences []models.RemoteSequence) error
}

// SaleService runs the sale creation workflow: number issuance, local
// persistence, stock decrement and the remote-commit-or-enqueue decision.
type SaleService interface {
	CreateSale(ctx context.Context, draft models.Sale) (models.Sale, error)
	GetSale(ctx context.Context, id string) (models.Sale, error)
	ListSales(ctx context.Context) ([]models.Sale, error)
}

// CatalogService is the offline-aware CRUD surface for products, customers
// and categories: every mutation lands locally first and reaches the backend
// either immediately or through the pending queue.
type CatalogService interface {
	SaveProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error)

	SaveCustomer(ctx context.Context, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context) ([]models.Customer, error)

	SaveCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]models.Category, error)

	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
}

// SyncManager runs one bidirectional synchronization pass: pull reference
// data, drain the pending queue, sweep confirmed queue rows past retention.
type SyncManager interface {
	// Sync is safe to call from any goroutine; a call made while a pass is
	// already running returns immediately without queuing another pass.
	Sync(ctx context.Context)
}
