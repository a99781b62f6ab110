// Package entity contains the core business objects of the generated
// dataset. Field names on the JSON tags are the wire format consumed by the
// downstream ELT pipeline and must stay stable across runs.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is one catalog entry. The catalog is static: it is rebuilt
// identically on every run and products are never mutated.
type Product struct {
	ID        int64           `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
