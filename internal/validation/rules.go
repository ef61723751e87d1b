package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/Lixing-Zhang/grubdash-api/internal/apperror"
	"github.com/Lixing-Zhang/grubdash-api/internal/models"
	"github.com/Lixing-Zhang/grubdash-api/internal/repository"
)

// Body field names as they appear in requests
const (
	FieldDeliverTo    = "deliverTo"
	FieldMobileNumber = "mobileNumber"
	FieldStatus       = "status"
	FieldDishes       = "dishes"
)

// OrderFinder resolves stored orders
type OrderFinder interface {
	Find(ctx context.Context, id string) (*models.Order, error)
}

// Required fails when field is missing or empty in the body
func Required(field string) Rule {
	return func(ctx context.Context, req *Request) error {
		if !hasField(req.Payload, field) {
			return apperror.Validation("Must include %s", field)
		}
		return nil
	}
}

func hasField(p models.OrderPayload, field string) bool {
	switch field {
	case FieldDeliverTo:
		return p.DeliverTo != ""
	case FieldMobileNumber:
		return p.MobileNumber != ""
	case FieldStatus:
		return p.Status != ""
	case FieldDishes:
		return present(p.Dishes)
	default:
		return false
	}
}

// present reports whether a raw JSON value exists and is not an empty scalar
func present(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", "0", `""`:
		return false
	}
	return true
}

// DishesNotEmpty requires dishes to be an array with at least one dish
func DishesNotEmpty(ctx context.Context, req *Request) error {
	var dishes []models.DishPayload
	if err := json.Unmarshal(req.Payload.Dishes, &dishes); err != nil || len(dishes) == 0 {
		return apperror.Validation("Order must include at least one dish.")
	}
	req.submitted = dishes
	return nil
}

// DishesHaveQuantity requires every dish to carry a quantity
func DishesHaveQuantity(ctx context.Context, req *Request) error {
	for i, dish := range req.submitted {
		if !present(dish.Quantity) {
			return quantityError(i)
		}
	}
	return nil
}

// DishQuantitiesValid requires every quantity to be an integer greater than
// zero and records the parsed dishes on the request.
func DishQuantitiesValid(ctx context.Context, req *Request) error {
	dishes := make([]models.Dish, len(req.submitted))
	for i, dish := range req.submitted {
		qty, ok := parseQuantity(dish.Quantity)
		if !ok {
			return quantityError(i)
		}
		dishes[i] = models.Dish{
			ID:          dish.ID,
			Name:        dish.Name,
			Description: dish.Description,
			ImageURL:    dish.ImageURL,
			Price:       dish.Price,
			Quantity:    qty,
		}
	}
	req.Dishes = dishes
	return nil
}

// parseQuantity accepts JSON numbers with an integral value above zero.
// Strings such as "2" are rejected.
func parseQuantity(raw json.RawMessage) (int, bool) {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 || (v[0] != '-' && (v[0] < '0' || v[0] > '9')) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(v), 64)
	if err != nil || f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func quantityError(index int) error {
	return apperror.Validation("Dish %d must have a quantity that is an integer greater than 0.", index)
}

// OrderExists resolves the path id to a stored order
func OrderExists(finder OrderFinder) Rule {
	return func(ctx context.Context, req *Request) error {
		order, err := finder.Find(ctx, req.PathID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return apperror.NotFound("Order does not exist: %s", req.PathID)
			}
			return fmt.Errorf("find order %s: %w", req.PathID, err)
		}
		req.Order = order
		return nil
	}
}

// IDMatchesRoute rejects a body id that differs from the path id
func IDMatchesRoute(ctx context.Context, req *Request) error {
	id := req.Payload.ID
	if id != "" && id != req.PathID {
		return apperror.Validation("Order id does not match route id. Order: %s, Route: %s", id, req.PathID)
	}
	return nil
}

// StatusUpdatable restricts the requested status on update
func StatusUpdatable(ctx context.Context, req *Request) error {
	status := models.Status(req.Payload.Status)
	switch {
	case status.Updatable():
		return nil
	case status.IsDelivered():
		return errDelivered
	default:
		return apperror.Validation("Order must have a status of pending, preparing, out-for-delivery, delivered.")
	}
}

// NotDelivered blocks any change to an order that was already delivered
func NotDelivered(ctx context.Context, req *Request) error {
	if req.Order != nil && req.Order.Status.IsDelivered() {
		return errDelivered
	}
	return nil
}

// StatusKnown allows an omitted status but rejects unknown values
func StatusKnown(ctx context.Context, req *Request) error {
	status := models.Status(req.Payload.Status)
	if status != "" && !status.Valid() {
		return apperror.Validation("Order must have a status of pending, preparing, out-for-delivery, delivered.")
	}
	return nil
}

// IsPending only lets pending orders through
func IsPending(ctx context.Context, req *Request) error {
	if req.Order == nil || req.Order.Status != models.StatusPending {
		return apperror.Validation("An order cannot be deleted unless it is pending")
	}
	return nil
}

var errDelivered = apperror.Validation("A delivered order cannot be changed.")
