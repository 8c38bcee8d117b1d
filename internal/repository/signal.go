package repository

import (
	"context"
	"fmt"

	"github.com/floracart/insight-service/internal/domain"
)

// The signal tables are written by external collectors (forecaster, trends
// fetcher); this service only reads the already-fetched values.

func (r *Repository) GetForecasts(ctx context.Context) ([]domain.ForecastEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT product_id, status, growth_pct
		FROM product_forecasts
		ORDER BY product_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query forecasts: %w", err)
	}
	defer rows.Close()

	var entries []domain.ForecastEntry
	for rows.Next() {
		var e domain.ForecastEntry
		if err := rows.Scan(&e.ProductID, &e.Status, &e.GrowthPct); err != nil {
			return nil, fmt.Errorf("scan forecast: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate forecasts: %w", err)
	}
	return entries, nil
}

func (r *Repository) GetTrendInterest(ctx context.Context) (domain.TrendInterest, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT keyword, avg_interest FROM trend_interest`,
	)
	if err != nil {
		return nil, fmt.Errorf("query trend interest: %w", err)
	}
	defer rows.Close()

	interest := make(domain.TrendInterest)
	for rows.Next() {
		var keyword string
		var avg float64
		if err := rows.Scan(&keyword, &avg); err != nil {
			return nil, fmt.Errorf("scan trend interest: %w", err)
		}
		interest[keyword] = avg
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trend interest: %w", err)
	}
	return interest, nil
}

func (r *Repository) GetKeywordMap(ctx context.Context) (domain.KeywordMap, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT product_id, keyword FROM product_keywords`,
	)
	if err != nil {
		return nil, fmt.Errorf("query product keywords: %w", err)
	}
	defer rows.Close()

	keywords := make(domain.KeywordMap)
	for rows.Next() {
		var productID, keyword string
		if err := rows.Scan(&productID, &keyword); err != nil {
			return nil, fmt.Errorf("scan product keyword: %w", err)
		}
		keywords[productID] = keyword
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product keywords: %w", err)
	}
	return keywords, nil
}
