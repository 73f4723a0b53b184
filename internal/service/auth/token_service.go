// Package auth implements the capability-token service: a single static
// credential pair is exchanged for a short-lived signed token, and bearer
// header values are verified against it. No identity records are kept;
// verification is pure computation and safe for concurrent use.
package auth

import (
	"context"
	"time"
)

// TokenService defines the credential exchange and verification operations.
type TokenService interface {
	// IssueToken checks the supplied pair against the configured static
	// credentials and, on success, returns a signed token embedding the
	// account name together with the token's expiry time.
	// Returns ErrMissingCredentials before any comparison when either
	// input is empty, and ErrInvalidCredentials on mismatch.
	IssueToken(ctx context.Context, usuario, password string) (string, time.Time, error)

	// VerifyToken verifies a raw Authorization header value. The "Bearer "
	// scheme prefix is stripped when present; when absent, verification
	// proceeds against the full string and is expected to fail as
	// malformed, so logs can tell "no prefix" apart from "bad signature".
	// Returns ErrTokenMissing for an empty value, ErrTokenExpired past the
	// validity window, and ErrTokenMalformed for structure or signature
	// failures.
	VerifyToken(ctx context.Context, headerValue string) (*Claims, error)
}

// Claims is the decoded identity carried by a verified capability token.
type Claims struct {
	// Usuario is the static account name the token was issued for.
	Usuario string `json:"usuario"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
