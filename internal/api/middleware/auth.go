package middleware

import (
	"context"
	"net/http"

	"github.com/phrazzld/camiones-api/internal/api/shared"
	"github.com/phrazzld/camiones-api/internal/service/auth"
)

// AuthMiddleware guards mutating routes with capability-token verification.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireToken verifies the Authorization header value and adds the account
// name to the request context for authorized requests. The raw header value
// is handed to the token service unchanged; the lenient no-prefix handling
// lives there. Any verification failure, including an absent header, is a
// 401 on guarded routes.
func (m *AuthMiddleware) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.tokens.VerifyToken(r.Context(), r.Header.Get("Authorization"))
		if err != nil {
			switch err {
			case auth.ErrTokenMissing:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token de autenticación requerido")
			case auth.ErrTokenExpired:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expirado")
			default:
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token no válido")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UsuarioContextKey, claims.Usuario)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUsuario extracts the authenticated account name from the request context.
// Returns the name and a boolean indicating if it was found.
func GetUsuario(r *http.Request) (string, bool) {
	usuario, ok := r.Context().Value(shared.UsuarioContextKey).(string)
	return usuario, ok
}
