package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/grubdash-api/internal/apperror"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
	"github.com/go-chi/chi/v5"
)

// OrderParam is the route parameter holding the order id
const OrderParam = "orderId"

// orderService is what the handler needs from the service layer
type orderService interface {
	CreateOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error)
	UpdateOrder(ctx context.Context, id string, payload *models.OrderPayload) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	ListOrders(ctx context.Context) ([]models.Order, error)
}

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService orderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService orderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	WriteData(w, http.StatusOK, orders, h.log)
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeOrder(w, r)
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), payload)
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	WriteData(w, http.StatusCreated, order, h.log)
	h.log.Info("order created", "order_id", order.ID, "dishes_count", len(order.Dishes))
}

// GetOrder handles GET /orders/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetOrder(r.Context(), chi.URLParam(r, OrderParam))
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	WriteData(w, http.StatusOK, order, h.log)
}

// UpdateOrder handles PUT /orders/{orderId}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeOrder(w, r)
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), chi.URLParam(r, OrderParam), payload)
	if err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	WriteData(w, http.StatusOK, order, h.log)
	h.log.Info("order updated", "order_id", order.ID, "status", order.Status)
}

// DeleteOrder handles DELETE /orders/{orderId}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, OrderParam)
	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		WriteError(w, r, err, h.log)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.log.Info("order deleted", "order_id", id)
}

// NotFound reports an unknown path
func (h *OrderHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperror.NotFound("Path not found: %s", r.URL.Path), h.log)
}

// MethodNotAllowed reports a known path hit with an unsupported method
func (h *OrderHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperror.New(http.StatusMethodNotAllowed, "%s not allowed for %s", r.Method, r.URL.Path), h.log)
}
