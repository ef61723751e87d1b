package models

// Status is the lifecycle state of an order.
//
//	pending <-> preparing <-> out-for-delivery -> delivered
//
// Any non-delivered status may move to any other; delivered is final.
type Status string

const (
	StatusPending        Status = "pending"
	StatusPreparing      Status = "preparing"
	StatusOutForDelivery Status = "out-for-delivery"
	StatusDelivered      Status = "delivered"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

// Updatable reports whether a client may request s on update.
// Delivered can't be requested, only reached.
func (s Status) Updatable() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery:
		return true
	}
	return false
}

func (s Status) IsDelivered() bool {
	return s == StatusDelivered
}

func (s Status) String() string {
	return string(s)
}
