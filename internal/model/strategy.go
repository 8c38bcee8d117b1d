package model

import (
	"sort"
	"time"

	"github.com/floracart/insight-service/internal/domain"
)

const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"

	strategyTopN = 5
)

// BuildStrategy assembles the final document: target products are the
// sorted intersection of the top sellers and the products the forecaster
// produced a usable forecast for, recommendations are the head of the
// composite ranking, and the narrative fields are fixed rule-based strings.
func BuildStrategy(
	forecasts []domain.ForecastEntry,
	topSellers []domain.TopSeller,
	scored []domain.ScoredProduct,
	sentiment string,
	now time.Time,
) domain.Strategy {
	forecastOK := make(map[string]bool, len(forecasts))
	for _, f := range forecasts {
		if f.Status == domain.ForecastStatusOK {
			forecastOK[f.ProductID] = true
		}
	}

	targets := make([]string, 0, len(topSellers))
	for _, ts := range topSellers {
		if forecastOK[ts.ProductID] {
			targets = append(targets, ts.ProductID)
		}
	}
	sort.Strings(targets)

	revenue := "Increase promotions to stimulate demand"
	if sentiment == SentimentPositive {
		revenue = "Scale up online marketing and expand marketplace channels"
	}

	recs := scored
	if len(recs) > strategyTopN {
		recs = recs[:strategyTopN]
	}

	return domain.Strategy{
		TargetProducts:  targets,
		RevenueStrategy: revenue,
		Recommendations: recs,
		Notes: []string{
			"Prioritize inventory and ad spend for the top composite-scored products.",
			"Refresh listing keywords against currently rising search queries.",
			"Prepare seasonal promotion bundles two to three weeks before each peak.",
			"Expand sales channels for products with positive forecast growth.",
		},
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
}
