package service

import "errors"

var (
	// ErrSequenceExhausted means remote invoice-number issuance kept hitting
	// duplicate-key conflicts for the whole attempt budget. Fatal for the
	// sale being created; the caller decides how to surface it.
	ErrSequenceExhausted = errors.New("invoice number issuance attempts exhausted")

	// ErrEmptySale rejects a sale draft with no line items.
	ErrEmptySale = errors.New("sale has no line items")
)
