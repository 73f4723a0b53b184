package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/camiones-api/internal/service/auth"
)

const (
	testUsuario = "admin"
	testSecret  = "test-secret-key-at-least-16-bytes"
)

func newAuthRouter(tokens auth.TokenService) http.Handler {
	h := NewAuthHandler(tokens, nil)
	r := chi.NewRouter()
	r.Post("/api/auth/login", h.Login)
	r.Post("/api/auth/verifyToken", h.VerifyToken)
	return r
}

func newFrozenTokenService(now time.Time) auth.TokenService {
	return auth.NewTestTokenService(testUsuario, "secret123", testSecret, 5*time.Minute, func() time.Time {
		return now
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid credentials return a token and expiry", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
			Usuario:  testUsuario,
			Password: "secret123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp LoginResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, now.Add(5*time.Minute).Format(time.RFC3339), resp.ExpiresAt)
	})

	t.Run("wrong password answers 404", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
			Usuario:  testUsuario,
			Password: "wrong",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Credenciales no válidas", resp["error"])
	})

	t.Run("unknown usuario answers 404", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{
			Usuario:  "nobody",
			Password: "secret123",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing credentials answer 400", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login", LoginRequest{Usuario: testUsuario})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Usuario y contraseña son obligatorios", resp["error"])
	})

	t.Run("malformed body answers 400", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVerifyToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	issue := func(t *testing.T, tokens auth.TokenService) string {
		t.Helper()
		token, _, err := tokens.IssueToken(context.Background(), testUsuario, "secret123")
		require.NoError(t, err)
		return token
	}

	t.Run("valid token returns the decoded identity", func(t *testing.T) {
		t.Parallel()
		tokens := newFrozenTokenService(now)
		router := newAuthRouter(tokens)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verifyToken", nil)
		req.Header.Set("Authorization", "Bearer "+issue(t, tokens))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp VerifyTokenResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, testUsuario, resp.Usuario)
		assert.Equal(t, now.Format(time.RFC3339), resp.IssuedAt)
		assert.Equal(t, now.Add(5*time.Minute).Format(time.RFC3339), resp.ExpiresAt)
	})

	t.Run("missing header answers 403", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verifyToken", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Cabecera de autorización ausente", resp["error"])
	})

	t.Run("garbage token answers 401", func(t *testing.T) {
		t.Parallel()
		router := newAuthRouter(newFrozenTokenService(now))

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verifyToken", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token answers 401", func(t *testing.T) {
		t.Parallel()
		issued := newFrozenTokenService(now)
		token := issue(t, issued)

		// Verify with a clock past the validity window.
		later := auth.NewTestTokenService(testUsuario, "secret123", testSecret, 5*time.Minute, func() time.Time {
			return now.Add(5*time.Minute + time.Second)
		})
		router := newAuthRouter(later)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/verifyToken", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Token expirado", resp["error"])
	})
}
