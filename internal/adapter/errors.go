package adapter

import "errors"

var (
	// ErrRemoteUnavailable wraps any transport-level failure: DNS, refused
	// connection, timeout. Callers fall back to the enqueue path.
	ErrRemoteUnavailable = errors.New("remote backend unavailable")

	// ErrUnauthorized means the session token was rejected.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrDuplicateKey marks a uniqueness violation, e.g. an invoice number
	// already issued to another terminal. Number issuance retries on it.
	ErrDuplicateKey = errors.New("duplicate key violation")

	// ErrConflict is any other 409-class rejection.
	ErrConflict = errors.New("remote conflict")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("remote record not found")
	ErrInternalServerError = errors.New("remote internal server error")
)
