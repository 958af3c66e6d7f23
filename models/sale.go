package models

import "time"

// Sale is the locally persisted sale record. The ID is generated on the
// terminal and is globally unique; InvoiceNumber may start out as a
// provisional local number and is overwritten once the backend confirms the
// sale. After the initial write only Synced and InvoiceNumber change.
type Sale struct {
	ID            string     `json:"id"`
	InvoiceNumber string     `json:"invoice_number"`
	DocumentType  string     `json:"document_type"`
	CustomerID    string     `json:"customer_id,omitempty"`
	Items         []SaleItem `json:"items,omitempty"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Total         float64    `json:"total"`
	PaymentMethod string     `json:"payment_method"`
	AmountPaid    float64    `json:"amount_paid"`
	Change        float64    `json:"change"`
	Synced        bool       `json:"synced"`
	StoreID       string     `json:"store_id"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SaleItem is a single line of a sale. ProductID is empty when the scanned
// identifier did not match a catalog product; such lines are kept rather
// than rejected.
type SaleItem struct {
	SaleID      string  `json:"sale_id"`
	ProductID   string  `json:"product_id,omitempty"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TaxRate     float64 `json:"tax_rate"`
	LineTotal   float64 `json:"line_total"`
}
