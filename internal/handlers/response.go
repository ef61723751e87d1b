package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grubdash-api/internal/apperror"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteData writes data wrapped in the {"data": ...} envelope
func WriteData(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	WriteJSON(w, status, models.DataResponse{Data: data}, logger)
}

// WriteError is the single path every failure takes to the client.
// It renders {"status": ..., "message": ...}; errors that are not
// *apperror.Error are logged and reported as 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	appErr := apperror.From(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	} else {
		logger.DebugContext(r.Context(), "request rejected", "method", r.Method, "path", r.URL.Path, "status", appErr.Status, "message", appErr.Message)
	}
	WriteJSON(w, appErr.Status, appErr, logger)
}
