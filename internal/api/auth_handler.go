package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/camiones-api/internal/api/shared"
	"github.com/phrazzld/camiones-api/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	tokens auth.TokenService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokens auth.TokenService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		tokens: tokens,
		logger: logger,
	}
}

// Login handles POST /api/auth/login: the credential exchange.
// Missing credentials are a 400; a failed check is a 404, keeping the
// original contract.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Formato de solicitud no válido")
		return
	}

	// The service re-checks emptiness itself; the struct validation just
	// front-loads the obvious case with the same 400 outcome.
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(auth.ErrMissingCredentials))
		return
	}

	token, expiresAt, err := h.tokens.IssueToken(r.Context(), req.Usuario, req.Password)
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// VerifyToken handles POST /api/auth/verifyToken.
// An absent Authorization header is a 403; a present but invalid or expired
// token is a 401. On success the decoded identity is returned.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	claims, err := h.tokens.VerifyToken(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		HandleServiceError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, VerifyTokenResponse{
		Usuario:   claims.Usuario,
		IssuedAt:  claims.IssuedAt.Format(time.RFC3339),
		ExpiresAt: claims.ExpiresAt.Format(time.RFC3339),
	})
}
