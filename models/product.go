package models

import "time"

const (
	ProductActive   = "active"
	ProductInactive = "inactive"
)

// Product is a catalog item cached locally on the terminal. Pulled snapshots
// from the backend overwrite the local row (last-write-wins); stock is also
// decremented locally at sale time.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Cost       float64   `json:"cost"`
	Stock      int64     `json:"stock"`
	MinStock   int64     `json:"min_stock"`
	CategoryID string    `json:"category_id"`
	Status     string    `json:"status"`
	StoreID    string    `json:"store_id"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Category is pulled reference data; local rows are read-through cache.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	StoreID string `json:"store_id"`
}

// Customer is pulled reference data with best-effort contact fields.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
	StoreID string `json:"store_id"`
}
