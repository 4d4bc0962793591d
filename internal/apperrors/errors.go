// Package apperrors defines the error kinds the handler boundary maps to
// HTTP statuses. Services wrap these sentinels with context via fmt.Errorf
// and %w; handlers match them with errors.Is and return a generic public
// message so internal details stay in the log.
package apperrors

import "errors"

var (
	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized marks failed authentication. Unknown email and wrong
	// password both map here so responses do not leak account existence.
	ErrUnauthorized = errors.New("invalid credentials")

	// ErrConflict marks a write rejected by existing state, such as a
	// duplicate email or a product still referenced by order items.
	ErrConflict = errors.New("conflict")

	// ErrInsufficientStock marks an order rejected because a conditional
	// stock decrement matched no row (stock too low or product missing).
	ErrInsufficientStock = errors.New("insufficient stock")
)
