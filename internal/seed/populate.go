package seed

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

type orderCreator interface {
	Create(ctx context.Context, order models.Order) error
}

type idObserver interface {
	Observe(id string)
}

// Populate stores orders and registers their ids with the id generator
func Populate(ctx context.Context, repo orderCreator, ids idObserver, orders []models.Order) error {
	for _, order := range orders {
		if err := repo.Create(ctx, order); err != nil {
			return fmt.Errorf("seed order %s: %w", order.ID, err)
		}
		ids.Observe(order.ID)
	}
	return nil
}
