package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/grubdash-api/internal/apperror"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
	"github.com/Lixing-Zhang/grubdash-api/internal/repository"
	"github.com/Lixing-Zhang/grubdash-api/internal/validation"
)

// IDGenerator issues fresh order identifiers
type IDGenerator interface {
	Next(taken func(id string) bool) string
}

// OrderService handles order business logic
type OrderService struct {
	repo repository.OrderRepository
	ids  IDGenerator
	log  *slog.Logger

	createRules []validation.Rule
	updateRules []validation.Rule
	readRules   []validation.Rule
	deleteRules []validation.Rule
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository, ids IDGenerator, log *slog.Logger) *OrderService {
	exists := validation.OrderExists(repo)

	return &OrderService{
		repo: repo,
		ids:  ids,
		log:  log,
		createRules: []validation.Rule{
			validation.Required(validation.FieldDeliverTo),
			validation.Required(validation.FieldMobileNumber),
			validation.Required(validation.FieldDishes),
			validation.DishesNotEmpty,
			validation.DishesHaveQuantity,
			validation.DishQuantitiesValid,
			validation.StatusKnown,
		},
		updateRules: []validation.Rule{
			validation.Required(validation.FieldDeliverTo),
			validation.Required(validation.FieldMobileNumber),
			validation.Required(validation.FieldStatus),
			validation.Required(validation.FieldDishes),
			exists,
			validation.DishesNotEmpty,
			validation.IDMatchesRoute,
			validation.DishesHaveQuantity,
			validation.DishQuantitiesValid,
			validation.StatusUpdatable,
			validation.NotDelivered,
		},
		readRules: []validation.Rule{
			exists,
		},
		deleteRules: []validation.Rule{
			exists,
			validation.IsPending,
		},
	}
}

// CreateOrder validates the payload and stores a new order.
// An omitted status defaults to pending.
func (s *OrderService) CreateOrder(ctx context.Context, payload *models.OrderPayload) (*models.Order, error) {
	req := validation.NewRequest("", payload)
	if err := validation.Run(ctx, req, s.createRules...); err != nil {
		return nil, err
	}

	status := models.Status(req.Payload.Status)
	if status == "" {
		status = models.StatusPending
	}

	order := models.Order{
		ID:           s.ids.Next(func(id string) bool { return s.exists(ctx, id) }),
		DeliverTo:    req.Payload.DeliverTo,
		MobileNumber: req.Payload.MobileNumber,
		Status:       status,
		Dishes:       req.Dishes,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Debug("order stored", "order_id", order.ID, "dishes", len(order.Dishes))
	return &order, nil
}

// UpdateOrder validates the payload and overwrites the order's fields
func (s *OrderService) UpdateOrder(ctx context.Context, id string, payload *models.OrderPayload) (*models.Order, error) {
	req := validation.NewRequest(id, payload)
	if err := validation.Run(ctx, req, s.updateRules...); err != nil {
		return nil, err
	}

	order := *req.Order
	order.DeliverTo = req.Payload.DeliverTo
	order.MobileNumber = req.Payload.MobileNumber
	order.Status = models.Status(req.Payload.Status)
	order.Dishes = req.Dishes

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, s.storeError(id, err)
	}

	s.log.Debug("order updated", "order_id", id, "status", order.Status)
	return &order, nil
}

// GetOrder returns the order with the given id
func (s *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	req := validation.NewRequest(id, nil)
	if err := validation.Run(ctx, req, s.readRules...); err != nil {
		return nil, err
	}
	return req.Order, nil
}

// DeleteOrder removes a pending order
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	req := validation.NewRequest(id, nil)
	if err := validation.Run(ctx, req, s.deleteRules...); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError(id, err)
	}

	s.log.Debug("order deleted", "order_id", id)
	return nil
}

// ListOrders returns every stored order
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.List(ctx)
}

func (s *OrderService) exists(ctx context.Context, id string) bool {
	_, err := s.repo.Find(ctx, id)
	return err == nil
}

// storeError maps a write that lost a race with a delete to 404
func (s *OrderService) storeError(id string, err error) error {
	if errors.Is(err, repository.ErrOrderNotFound) {
		return apperror.NotFound("Order does not exist: %s", id)
	}
	return fmt.Errorf("store order %s: %w", id, err)
}
