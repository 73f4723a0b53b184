package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/camiones-api/internal/api/shared"
	"github.com/phrazzld/camiones-api/internal/domain"
	"github.com/phrazzld/camiones-api/internal/service/auth"
	"github.com/phrazzld/camiones-api/internal/service/truck"
	"github.com/phrazzld/camiones-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types to
// clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrTokenMalformed):
		return http.StatusUnauthorized

	case errors.Is(err, auth.ErrTokenMissing):
		return http.StatusForbidden

	// The original contract answers a failed credential check with 404,
	// not 401. Preserved.
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusNotFound

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Bad request errors
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, domain.ErrIncompleteFields),
		errors.Is(err, store.ErrNoFieldsProvided),
		errors.Is(err, truck.ErrInvalidID),
		errors.Is(err, truck.ErrMissingID):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error type. Messages keep the wording of the original service.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return "Usuario y contraseña son obligatorios"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Credenciales no válidas"
	case errors.Is(err, auth.ErrTokenMissing):
		return "Cabecera de autorización ausente"
	case errors.Is(err, auth.ErrTokenExpired):
		return "Token expirado"
	case errors.Is(err, auth.ErrTokenMalformed):
		return "Token no válido"
	case errors.Is(err, domain.ErrIncompleteFields):
		return "Todos los campos son obligatorios"
	case errors.Is(err, store.ErrNoFieldsProvided):
		return "No se proporcionaron datos para la actualización"
	case errors.Is(err, truck.ErrInvalidID):
		return "ID de camión no válido"
	case errors.Is(err, truck.ErrMissingID):
		return "El parámetro id es obligatorio en la consulta"
	case errors.Is(err, store.ErrTruckNotFound):
		return "Camion no encontrado"
	case errors.Is(err, store.ErrNotFound):
		return "Registro no encontrado"
	default:
		return "Error interno del servidor"
	}
}

// HandleServiceError writes the error response for a failed service call.
// Persistence errors become a 500 carrying the driver message and diagnostic
// code in the tipo/sql detail fields, matching the original error payloads;
// everything else goes through the status/message mapping. A non-empty
// messageOverride replaces the mapped message, so endpoints can keep their
// endpoint-specific wording.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	var perr *store.PersistenceError
	if errors.As(err, &perr) {
		shared.RespondWithErrorResponse(w, r, shared.ErrorResponse{
			Error:   "Error de conexión",
			Tipo:    perr.Message,
			SQLCode: perr.Code,
			Code:    http.StatusInternalServerError,
		})
		return
	}

	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), message)
}
