package entity

import "github.com/pkg/errors"

// OrderStatus is one state of the order lifecycle.
type OrderStatus string

const (
	StatusCreated   OrderStatus = "CREATED"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"

	// StatusCancelled is a terminal branch outside the linear flow. It is
	// reachable from CREATED, or from PAID when post-payment cancellation
	// is allowed.
	StatusCancelled OrderStatus = "CANCELLED"
)

// LifecycleFlow is the canonical forward-only status sequence. Every order
// walks a prefix of it; no skips, no backward transitions.
var LifecycleFlow = []OrderStatus{StatusCreated, StatusPaid, StatusShipped, StatusDelivered}

// FlowTo returns the lifecycle prefix ending at final.
//
// For StatusCancelled the recorded path is CREATED, CANCELLED when
// afterPayment is false, and CREATED, PAID, CANCELLED when it is true.
func FlowTo(final OrderStatus, afterPayment bool) ([]OrderStatus, error) {
	if final == StatusCancelled {
		if afterPayment {
			return []OrderStatus{StatusCreated, StatusPaid, StatusCancelled}, nil
		}

		return []OrderStatus{StatusCreated, StatusCancelled}, nil
	}

	for i, s := range LifecycleFlow {
		if s == final {
			return LifecycleFlow[:i+1], nil
		}
	}

	return nil, errors.Errorf("unknown order status: %s", final)
}

// RequiresPayment reports whether an order whose recorded history contains
// the given statuses must carry a payment record.
func RequiresPayment(history []OrderStatus) bool {
	for _, s := range history {
		if s == StatusPaid {
			return true
		}
	}

	return false
}

// RequiresShipment reports whether the final status implies a shipment
// record exists.
func (s OrderStatus) RequiresShipment() bool {
	return s == StatusShipped || s == StatusDelivered
}

// Terminal reports whether no further transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
