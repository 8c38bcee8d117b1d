package repository

import (
	"context"
	"fmt"

	"github.com/floracart/insight-service/internal/domain"
)

// GetTransactions returns the full order history as flat purchase records.
// The scoring core rebuilds its interaction matrix from this on every
// request, so the result must cover every order line.
func (r *Repository) GetTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, product_id, quantity, created_at
		FROM orders
		ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.UserID, &tx.ProductID, &tx.Quantity, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

// GetTopSellers aggregates purchase counts per product, best first.
func (r *Repository) GetTopSellers(ctx context.Context, limit int) ([]domain.TopSeller, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT product_id, SUM(quantity)::int AS purchase_count
		FROM orders
		GROUP BY product_id
		ORDER BY purchase_count DESC, product_id
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query top sellers: %w", err)
	}
	defer rows.Close()

	var sellers []domain.TopSeller
	for rows.Next() {
		var ts domain.TopSeller
		if err := rows.Scan(&ts.ProductID, &ts.PurchaseCount); err != nil {
			return nil, fmt.Errorf("scan top seller: %w", err)
		}
		sellers = append(sellers, ts)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top sellers: %w", err)
	}
	return sellers, nil
}

// AddOrder records one purchase line.
func (r *Repository) AddOrder(ctx context.Context, userID, productID string, quantity int) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO orders (user_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, NOW())`,
		userID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("insert order user=%s product=%s: %w", userID, productID, err)
	}
	return nil
}
