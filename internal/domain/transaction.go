package domain

import "time"

// Transaction is one purchased line item from the order history.
// Quantity is never negative; zero-quantity lines carry no signal.
type Transaction struct {
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
