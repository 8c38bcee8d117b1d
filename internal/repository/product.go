package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/floracart/insight-service/internal/domain"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	p := &domain.Product{}

	err := r.pool.QueryRow(ctx,
		`SELECT id, name, category, price_vnd, created_at
		FROM products WHERE id = $1`,
		productID,
	).Scan(&p.ID, &p.Name, &p.Category, &p.PriceVND, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product id=%s: %w", productID, err)
	}

	return p, nil
}

func (r *Repository) GetProductIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM products ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query product ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product ids: %w", err)
	}
	return ids, nil
}

// GetProductsByIDs resolves product rows for display, keeping the order of
// the requested ids. Unknown ids are silently dropped.
func (r *Repository) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, category, price_vnd, created_at
		FROM products WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return nil, fmt.Errorf("query products by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]domain.Product, len(ids))
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PriceVND, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetPopularProducts is the cold-start fallback: best-selling products with
// their display fields.
func (r *Repository) GetPopularProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT p.id, p.name, p.category, p.price_vnd, p.created_at
		FROM products p
		JOIN orders o ON o.product_id = p.id
		GROUP BY p.id, p.name, p.category, p.price_vnd, p.created_at
		ORDER BY SUM(o.quantity) DESC, p.id
		LIMIT $1`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query popular products: %w", err)
	}
	defer rows.Close()

	var items []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PriceVND, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan popular product: %w", err)
		}
		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate popular products: %w", err)
	}
	return items, nil
}
