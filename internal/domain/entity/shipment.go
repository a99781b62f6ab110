package entity

import "time"

// Shipment exists iff the order reached SHIPPED. ShippedAt and DeliveredAt
// mirror the matching status-history timestamps; DeliveredAt stays nil until
// the order is DELIVERED.
type Shipment struct {
	ID          int64       `json:"shipment_id"`
	OrderID     int64       `json:"order_id"`
	Carrier     string      `json:"carrier"`
	Status      OrderStatus `json:"shipment_status"`
	ShippedAt   *time.Time  `json:"shipped_at"`
	DeliveredAt *time.Time  `json:"delivered_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewShipment builds a shipment whose UpdatedAt is derived from its other
// fields: the latest non-nil of deliveredAt and shippedAt, falling back to
// the order creation time. It is computed once here and never set directly.
func NewShipment(id, orderID int64, carrier string, status OrderStatus, orderCreatedAt time.Time, shippedAt, deliveredAt *time.Time) *Shipment {
	updatedAt := orderCreatedAt
	if shippedAt != nil {
		updatedAt = *shippedAt
	}
	if deliveredAt != nil {
		updatedAt = *deliveredAt
	}

	return &Shipment{
		ID:          id,
		OrderID:     orderID,
		Carrier:     carrier,
		Status:      status,
		ShippedAt:   shippedAt,
		DeliveredAt: deliveredAt,
		UpdatedAt:   updatedAt,
	}
}
