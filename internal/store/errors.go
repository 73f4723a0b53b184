package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrTruckNotFound indicates that the requested truck does not exist in the store.
	ErrTruckNotFound = fmt.Errorf("%w: camion", ErrNotFound)

	// ErrNoFieldsProvided is returned when a partial update carries an empty
	// field set. It is checked before any SQL is emitted: an empty SET clause
	// is both syntactically invalid and semantically meaningless.
	ErrNoFieldsProvided = errors.New("no fields provided for update")
)

// PersistenceError represents a store-level fault: connectivity loss,
// constraint violation, bad syntax. It carries the underlying driver
// message and diagnostic code for observability and is never retried.
type PersistenceError struct {
	Op      string // The operation that failed (e.g. "create", "list")
	Message string // Driver-supplied message
	Code    uint16 // Driver-specific diagnostic code, 0 when unknown
	Err     error  // Original error
}

// Error implements the error interface for PersistenceError.
func (e *PersistenceError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s failed: %s (code %d)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
