package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDuplicateID   = errors.New("order id already exists")
)

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) error
	Find(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order models.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Order, error)
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage.
// Orders are kept in insertion order; an index maps ids to slice positions.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
	index  map[string]int
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make([]models.Order, 0),
		index:  make(map[string]int),
	}
}

// Create appends an order
func (r *InMemoryOrderRepository) Create(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[order.ID]; exists {
		return ErrDuplicateID
	}

	r.index[order.ID] = len(r.orders)
	r.orders = append(r.orders, order.Clone())
	return nil
}

// Find returns a copy of the order with the given id
func (r *InMemoryOrderRepository) Find(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, exists := r.index[id]
	if !exists {
		return nil, ErrOrderNotFound
	}

	order := r.orders[i].Clone()
	return &order, nil
}

// Update replaces the stored order with the same id
func (r *InMemoryOrderRepository) Update(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[order.ID]
	if !exists {
		return ErrOrderNotFound
	}

	r.orders[i] = order.Clone()
	return nil
}

// Delete removes the order with the given id
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, exists := r.index[id]
	if !exists {
		return ErrOrderNotFound
	}

	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.orders); j++ {
		r.index[r.orders[j].ID] = j
	}
	return nil
}

// List returns all orders in insertion order
func (r *InMemoryOrderRepository) List(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orders = append(orders, order.Clone())
	}
	return orders, nil
}

// Count returns the number of stored orders
func (r *InMemoryOrderRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}
