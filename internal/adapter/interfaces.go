// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dariel Marte

package adapter

import (
	"context"

	"github.com/dmarte/puntoventa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_backend_mock.go -package=mock

// RemoteBackend is the outbound contract to the hosted relational backend.
// The sync core consumes it; it never re-specifies the backend's own
// semantics. All calls may fail with the sentinel errors of this package;
// transport-level failures are wrapped in [ErrRemoteUnavailable].
type RemoteBackend interface {
	// Ping probes the backend health endpoint. Used by the connectivity
	// fallback poll.
	Ping(ctx context.Context) error

	// ResolveProfile performs the session/profile lookup and returns the
	// tenant/store identity for this terminal.
	ResolveProfile(ctx context.Context) (models.StoreProfile, error)

	// SetToken installs the bearer token used for subsequent requests.
	SetToken(token string)

	// Pull-phase reads, scoped to the tenant/store.
	FetchProducts(ctx context.Context, storeID string) ([]models.Product, error)
	FetchCategories(ctx context.Context, storeID string) ([]models.Category, error)
	FetchCustomers(ctx context.Context, storeID string) ([]models.Customer, error)
	FetchDocumentTypes(ctx context.Context, storeID string) ([]models.DocumentType, error)
	FetchSequences(ctx context.Context, storeID string) ([]models.RemoteSequence, error)

	// GetNextInvoiceNumber asks the backend to issue the next number for a
	// document-type code. May fail with [ErrDuplicateKey] on a uniqueness
	// conflict, in which case the caller is expected to retry.
	GetNextInvoiceNumber(ctx context.Context, typeCode string) (string, error)

	// Sale commit operations. These are separate calls, not a single
	// remote transaction.
	InsertSale(ctx context.Context, sale models.Sale) error
	InsertSaleItems(ctx context.Context, items []models.SaleItem) error
	DecrementStock(ctx context.Context, productID string, quantity int64) error

	// Row-level mutations used when draining the pending queue.
	CreateProduct(ctx context.Context, product models.Product) error
	UpdateProduct(ctx context.Context, product models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CreateCustomer(ctx context.Context, customer models.Customer) error
	UpdateCustomer(ctx context.Context, customer models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, category models.Category) error
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id string) error
}
