// Package validation holds the checks that run before an order mutation.
//
// A Rule inspects a Request and returns nil or an *apperror.Error. Run
// executes rules in order and stops at the first failure, so later rules
// may rely on what earlier ones established (e.g. Request.Order is set once
// OrderExists has passed).
package validation

import (
	"context"

	"github.com/Lixing-Zhang/grubdash-api/internal/models"
)

// Request is the state the rules share for one HTTP request
type Request struct {
	PathID  string
	Payload models.OrderPayload

	// Order is the stored order, resolved by OrderExists.
	Order *models.Order
	// Dishes holds the parsed dishes once the quantity rules have passed.
	Dishes []models.Dish

	submitted []models.DishPayload
}

// NewRequest builds a Request. A nil payload is treated as an empty body.
func NewRequest(pathID string, payload *models.OrderPayload) *Request {
	req := &Request{PathID: pathID}
	if payload != nil {
		req.Payload = *payload
	}
	return req
}

// Rule is a single check
type Rule func(ctx context.Context, req *Request) error

// Run applies rules in order, returning the first error
func Run(ctx context.Context, req *Request, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(ctx, req); err != nil {
			return err
		}
	}
	return nil
}
