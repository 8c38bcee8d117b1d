package domain

import "time"

type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	PriceVND  int64     `json:"price_vnd"`
	CreatedAt time.Time `json:"created_at"`
}

type TopSeller struct {
	ProductID     string `json:"product_id"`
	PurchaseCount int    `json:"purchase_count"`
}
