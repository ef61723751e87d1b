package models

import "encoding/json"

// Order is a customer order with delivery details and its dishes
type Order struct {
	ID           string `json:"id"`
	DeliverTo    string `json:"deliverTo"`
	MobileNumber string `json:"mobileNumber"`
	Status       Status `json:"status"`
	Dishes       []Dish `json:"dishes"`
}

// Dish is a line item owned by an order
type Dish struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Clone returns a deep copy so callers never share the dishes slice
func (o Order) Clone() Order {
	dishes := make([]Dish, len(o.Dishes))
	copy(dishes, o.Dishes)
	o.Dishes = dishes
	return o
}

// OrderEnvelope wraps request bodies as {"data": {...}}
type OrderEnvelope struct {
	Data *OrderPayload `json:"data"`
}

// OrderPayload is the body of a create or update request.
// Dishes and each dish quantity stay raw so presence and type can be
// checked before they are trusted.
type OrderPayload struct {
	ID           string          `json:"id,omitempty"`
	DeliverTo    string          `json:"deliverTo"`
	MobileNumber string          `json:"mobileNumber"`
	Status       string          `json:"status"`
	Dishes       json.RawMessage `json:"dishes"`
}

// DishPayload is a dish as submitted by a client
type DishPayload struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url"`
	Price       float64         `json:"price"`
	Quantity    json.RawMessage `json:"quantity"`
}

// DataResponse is the {"data": ...} envelope used on every success response
type DataResponse struct {
	Data any `json:"data"`
}
