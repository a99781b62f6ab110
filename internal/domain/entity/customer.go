package entity

import "time"

// Customer is an account that places orders. Customers are append-only:
// once emitted in a batch they are never updated or deleted.
type Customer struct {
	ID        int64     `json:"customer_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
