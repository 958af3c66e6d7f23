package store

import (
	"context"
	"time"

	"github.com/dmarte/puntoventa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ProductRepository is the local product collection. Saves are upserts by
// primary key; pull-sync overwrites rows wholesale (remote wins).
type ProductRepository interface {
	Save(ctx context.Context, products ...models.Product) error
	Get(ctx context.Context, id string) (models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.Product, error)
	// AdjustStock adds delta to the product's stock, clamping the result
	// at zero. Unknown ids return ErrNotFound.
	AdjustStock(ctx context.Context, id string, delta int64) error
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// SaleRepository persists local sale records together with their line items.
// After the initial Save, only the synced flag and the invoice number are
// ever updated.
type SaleRepository interface {
	Save(ctx context.Context, sale models.Sale) error
	Get(ctx context.Context, id string) (models.Sale, error)
	GetAll(ctx context.Context) ([]models.Sale, error)
	GetUnsynced(ctx context.Context) ([]models.Sale, error)
	// MarkSynced flips the synced flag and overwrites the invoice number
	// with the server-confirmed one.
	MarkSynced(ctx context.Context, id string, invoiceNumber string) error
}

// ReferenceRepository covers the pulled read-through caches: categories,
// customers and document types. Pull-sync clears and rewrites them.
type ReferenceRepository interface {
	SaveCategories(ctx context.Context, categories ...models.Category) error
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	SaveCustomers(ctx context.Context, customers ...models.Customer) error
	GetAllCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	SaveDocumentTypes(ctx context.Context, types ...models.DocumentType) error
	GetAllDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
}

// QueueRepository is the durable pending-operation queue. Payloads are
// immutable once enqueued; only synced and last_error change afterwards.
type QueueRepository interface {
	Enqueue(ctx context.Context, item models.SyncQueueItem) (int64, error)
	// ListPending returns unconfirmed items in FIFO enqueue order. The
	// filter tolerates legacy rows where synced was stored as a boolean
	// literal rather than an integer.
	ListPending(ctx context.Context) ([]models.SyncQueueItem, error)
	MarkSynced(ctx context.Context, id int64) error
	// MarkError records the failure but leaves the item pending so the
	// next sync pass retries it.
	MarkError(ctx context.Context, id int64, message string) error
	// PurgeSynced deletes confirmed items created before olderThan and
	// reports how many rows were removed.
	PurgeSynced(ctx context.Context, olderThan time.Time) (int64, error)
}

// SettingsRepository is a small JSON-valued key-value collection holding the
// invoice sequence counters and the cached store profile.
type SettingsRepository interface {
	Put(ctx context.Context, key string, value any) error
	// Get unmarshals the stored value into dest; absent keys return
	// ErrNotFound.
	Get(ctx context.Context, key string, dest any) error
	Delete(ctx context.Context, key string) error
}
