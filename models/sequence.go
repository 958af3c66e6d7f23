package models

// SequenceCounter tracks the last locally issued invoice number for one
// document-type code. Current only moves forward: local issuance increments
// it and reconciliation against a server-confirmed number raises it to the
// observed value, never lowers it.
type SequenceCounter struct {
	Current int64  `json:"current"`
	Prefix  string `json:"prefix"`
}

// DocumentType maps a backend type identifier (possibly an opaque reference)
// to the short human-readable code that governs its numbering sequence,
// e.g. "B01" for a fiscal receipt.
type DocumentType struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	StoreID string `json:"store_id"`
}

// RemoteSequence mirrors a row of the backend's invoice_sequences table,
// pulled during sync to seed local counters.
type RemoteSequence struct {
	TypeID  string `json:"type_id"`
	Code    string `json:"code"`
	Current int64  `json:"current"`
}
