package models

import (
	"encoding/json"
	"time"
)

// Queue operation kinds.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Collections a queue item may target.
const (
	CollectionProducts   = "products"
	CollectionSales      = "sales"
	CollectionCustomers  = "customers"
	CollectionCategories = "categories"
)

// SyncQueueItem is one not-yet-confirmed mutation against a remote
// collection. Payload is a full snapshot of the entity at enqueue time and
// is immutable afterwards; only Synced and LastError change.
type SyncQueueItem struct {
	ID         int64           `json:"id"`
	Collection string          `json:"collection"`
	Op         string          `json:"op"`
	Payload    json.RawMessage `json:"payload"`
	Synced     bool            `json:"synced"`
	LastError  string          `json:"last_error,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}
