package auth

import "time"

// NewTestTokenService creates a token service with an injectable time
// function so tests can exercise the validity window deterministically.
func NewTestTokenService(
	usuario, password, secret string,
	lifetime time.Duration,
	timeFunc func() time.Time,
) TokenService {
	return &hmacTokenService{
		usuario:       usuario,
		password:      password,
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
	}
}
