package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/camiones-api/internal/service/truck"
)

// getPathID extracts the truck ID from the URL path parameters.
// Returns truck.ErrMissingID when the parameter is absent and
// truck.ErrInvalidID when it does not parse as a positive integer.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, truck.ErrMissingID
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, truck.ErrInvalidID
	}

	return id, nil
}
