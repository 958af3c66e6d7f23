package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrNegativeStock       = errors.New("stock cannot be negative")
	ErrEmptyDocumentType   = errors.New("document type is required")
	ErrNoLineItems         = errors.New("sale needs at least one line item")
	ErrInvalidQuantity     = errors.New("line quantity must be positive")
	ErrNegativeUnitPrice   = errors.New("line unit price cannot be negative")
	ErrEmptyPaymentMethod  = errors.New("payment method is required")
	ErrInsufficientPayment = errors.New("amount paid does not cover the total")
)
