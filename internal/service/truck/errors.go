package truck

import "errors"

// Service-level errors for truck operations.
var (
	// ErrInvalidID is returned when the target ID is not a positive integer.
	ErrInvalidID = errors.New("invalid truck ID")

	// ErrMissingID is returned when a delete request carries no ID at all.
	ErrMissingID = errors.New("truck ID is required")
)
