package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment exists iff its order recorded the PAID transition. Amount always
// equals the order total.
type Payment struct {
	ID        int64           `json:"payment_id"`
	OrderID   int64           `json:"order_id"`
	Provider  string          `json:"provider"`
	Status    string          `json:"payment_status"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
