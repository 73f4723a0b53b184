package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when a truck ID is not a positive integer.
	ErrInvalidID = errors.New("invalid truck ID")

	// ErrIncompleteFields is returned when an all-or-nothing operation
	// (create, full replace) is missing one or more of the mandatory fields.
	ErrIncompleteFields = errors.New("all truck fields are required")
)
