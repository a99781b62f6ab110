package entity

import "time"

// StatusHistory is one recorded lifecycle transition of an order. The rows
// of one order form a strictly increasing-timestamp prefix of the lifecycle
// flow ending at the order's final status.
type StatusHistory struct {
	ID        int64       `json:"status_history_id"`
	OrderID   int64       `json:"order_id"`
	Status    OrderStatus `json:"status"`
	ChangedAt time.Time   `json:"changed_at"`
}
