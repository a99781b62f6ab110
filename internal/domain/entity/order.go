package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the header record of one purchase. CreatedAt is the timestamp of
// the first status transition, UpdatedAt the timestamp of the last one.
type Order struct {
	ID          int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	Status      OrderStatus     `json:"order_status"`
	TotalAmount decimal.Decimal `json:"order_total_amount"`
	Currency    string          `json:"currency"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderItem is one line of an order. UnitPrice snapshots the product price
// at order creation and is immutable even if the catalog price changes.
type OrderItem struct {
	ID        int64           `json:"order_item_id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}
