package entity

import "time"

// Address belongs to exactly one customer. The generator emits one default
// shipping address per customer, created together with its owner.
type Address struct {
	ID         int64     `json:"address_id"`
	CustomerID int64     `json:"customer_id"`
	Type       string    `json:"type"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Country    string    `json:"country"`
	IsDefault  bool      `json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
