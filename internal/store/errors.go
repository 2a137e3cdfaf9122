// Package store implements all persistence operations over the SQLite
// database. Functions take a context and a *sql.DB; each call acquires
// and releases its own connection from the pool.
package store

import "errors"

// Sentinel errors mapped onto the HTTP error taxonomy at the API boundary.
var (
	// ErrInvalidInput marks client input that fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrItemNotFound is returned when a referenced item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyClaimed is returned when filing a claim against an
	// item whose claimed flag is already set.
	ErrItemAlreadyClaimed = errors.New("item already claimed")

	// ErrClaimNotPending is returned when a claim is absent or no longer
	// in the Pending state. A retried approval lands here instead of
	// double-applying its effects.
	ErrClaimNotPending = errors.New("claim not found or already processed")
)
