// Package respond writes the JSON envelopes used by every API endpoint.
// Success payloads set "success": true; errors carry "success": false plus
// an "error" message safe to show clients.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"news-agent/internal/domain/entity"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// headers already sent, can only log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes the error envelope with the given client-facing message.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, map[string]any{"success": false, "error": msg})
}

// SafeError maps an error to the envelope. Validation errors pass their
// message through with a 400; anything else is logged and returned as a
// generic 500 so internals never leak.
func SafeError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var verr *entity.ValidationError
	if errors.As(err, &verr) {
		Error(w, http.StatusBadRequest, verr.Message)
		return
	}

	slog.Default().Error("internal server error", slog.Any("error", err))
	Error(w, http.StatusInternalServerError, "internal server error")
}
