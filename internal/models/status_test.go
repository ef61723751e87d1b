package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		status    Status
		valid     bool
		updatable bool
	}{
		{StatusPending, true, true},
		{StatusPreparing, true, true},
		{StatusOutForDelivery, true, true},
		{StatusDelivered, true, false},
		{Status(""), false, false},
		{Status("cancelled"), false, false},
		{Status("Pending"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.updatable, tt.status.Updatable())
		})
	}

	assert.True(t, StatusDelivered.IsDelivered())
	assert.False(t, StatusPending.IsDelivered())
}

func TestOrder_Clone(t *testing.T) {
	orig := Order{
		ID:     "1",
		Status: StatusPending,
		Dishes: []Dish{{Name: "Pizza", Quantity: 1}},
	}

	clone := orig.Clone()
	clone.Dishes[0].Quantity = 5

	assert.Equal(t, 1, orig.Dishes[0].Quantity)
}

func TestOrder_JSONFieldNames(t *testing.T) {
	order := Order{
		ID:           "abc",
		DeliverTo:    "123 Main",
		MobileNumber: "555-1234",
		Status:       StatusOutForDelivery,
		Dishes:       []Dish{{Name: "Pizza", ImageURL: "p.png", Price: 10, Quantity: 1}},
	}

	raw, err := json.Marshal(order)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "123 Main", m["deliverTo"])
	assert.Equal(t, "555-1234", m["mobileNumber"])
	assert.Equal(t, "out-for-delivery", m["status"])

	dish := m["dishes"].([]any)[0].(map[string]any)
	assert.Equal(t, "p.png", dish["image_url"])
	assert.NotContains(t, dish, "id")
}
