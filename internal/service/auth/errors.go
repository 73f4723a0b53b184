package auth

import "errors"

// Common authentication service errors
var (
	// ErrMissingCredentials indicates the login request omitted the account
	// name or the secret. Checked before any comparison happens.
	ErrMissingCredentials = errors.New("missing credentials")

	// ErrInvalidCredentials indicates the supplied pair does not match the
	// configured static credential pair.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenMissing indicates no Authorization header value was provided.
	ErrTokenMissing = errors.New("authentication token is missing")

	// ErrTokenExpired indicates the token is past its validity window.
	ErrTokenExpired = errors.New("authentication token has expired")

	// ErrTokenMalformed indicates the token structure or signature is invalid.
	ErrTokenMalformed = errors.New("authentication token is malformed")
)
