package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse defines the standard error response structure.
// Tipo and SQLCode carry the underlying store diagnostics on persistence
// failures; they are omitted everywhere else.
type ErrorResponse struct {
	Error   string `json:"error"`
	Tipo    string `json:"tipo,omitempty"`
	SQLCode uint16 `json:"sql,omitempty"`
	Code    int    `json:"-"` // Not serialized to JSON, used for logging
	TraceID string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code
// and message. It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithErrorResponse(w, r, ErrorResponse{Error: message, Code: status})
}

// RespondWithErrorResponse writes a prepared error response, filling in the
// trace ID and logging at a level appropriate to the status code: 5xx at
// ERROR, everything else at DEBUG.
func RespondWithErrorResponse(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	resp.TraceID = GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if resp.Code >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response",
		slog.Int("status_code", resp.Code),
		slog.String("message", resp.Error),
		slog.String("trace_id", resp.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, resp.Code, resp)
}
