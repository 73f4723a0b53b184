package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/phrazzld/camiones-api/internal/config"
	"github.com/phrazzld/camiones-api/internal/platform/logger"
)

// bearerPrefix is the expected Authorization scheme prefix.
const bearerPrefix = "Bearer "

// hmacTokenService is an implementation of TokenService using HMAC-SHA
// signing over the one configured static credential pair.
type hmacTokenService struct {
	usuario       string
	password      string
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
}

// tokenClaims defines the structure of JWT claims we use
type tokenClaims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService interface
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a new token service using HMAC-SHA256 signing.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	if cfg.Usuario == "" || cfg.Password == "" {
		return nil, fmt.Errorf("static credential pair must be configured")
	}
	if len(cfg.TokenSecret) < 16 {
		return nil, fmt.Errorf("token secret must be at least 16 characters")
	}

	return &hmacTokenService{
		usuario:       cfg.Usuario,
		password:      cfg.Password,
		signingKey:    []byte(cfg.TokenSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
	}, nil
}

// IssueToken implements TokenService.IssueToken.
func (s *hmacTokenService) IssueToken(ctx context.Context, usuario, password string) (string, time.Time, error) {
	log := logger.FromContext(ctx)

	if usuario == "" || password == "" {
		return "", time.Time{}, ErrMissingCredentials
	}

	// Constant-time comparison of both halves of the pair; evaluate both
	// before branching so the account check cannot be timed separately.
	userOK := subtle.ConstantTimeCompare([]byte(usuario), []byte(s.usuario)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		log.Debug("credential check failed", "usuario", usuario)
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.timeFunc()
	expiresAt := now.Add(s.tokenLifetime)

	claims := tokenClaims{
		Usuario: usuario,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.New().String(), // Unique token ID
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign capability token",
			"error", err,
			"usuario", usuario,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", time.Time{}, fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	log.Info("capability token issued",
		"usuario", usuario,
		"expires_at", expiresAt)
	return signedToken, expiresAt, nil
}

// VerifyToken implements TokenService.VerifyToken.
func (s *hmacTokenService) VerifyToken(ctx context.Context, headerValue string) (*Claims, error) {
	log := logger.FromContext(ctx)

	if headerValue == "" {
		log.Debug("token verification failed: header missing")
		return nil, ErrTokenMissing
	}

	// Strip the scheme prefix when present. When absent, the full string is
	// verified anyway; a non-token value then fails as malformed, which
	// keeps "no prefix" and "bad signature" distinguishable in the logs.
	tokenString, hadPrefix := strings.CutPrefix(headerValue, bearerPrefix)
	if !hadPrefix {
		log.Debug("authorization value lacks Bearer prefix, verifying raw value")
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithTimeFunc(func() time.Time {
			return now // Use our injected time function for validation
		}),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&tokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug("token verification failed: token expired", "error", err)
			return nil, ErrTokenExpired
		}
		log.Debug("token verification failed",
			"error", err,
			"had_bearer_prefix", hadPrefix)
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		log.Debug("token verification failed: invalid claims")
		return nil, ErrTokenMalformed
	}

	log.Debug("token verified",
		"usuario", claims.Usuario,
		"token_id", claims.ID,
		"expiry", claims.ExpiresAt.Time)

	return &Claims{
		Usuario:   claims.Usuario,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
		ID:        claims.ID,
	}, nil
}
