package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// orderCounter reports how many orders are stored
type orderCounter interface {
	Count() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	orders  orderCounter
	version string
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(orders orderCounter, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		orders:  orders,
		version: version,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Orders    int       `json:"orders"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Orders:    h.orders.Count(),
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
