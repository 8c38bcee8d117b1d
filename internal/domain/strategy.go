package domain

// ScoredProduct is one row of the composite ranking: the raw signals the
// score was built from plus the weighted result.
type ScoredProduct struct {
	ProductID   string   `json:"product_id"`
	GrowthPct   *float64 `json:"forecast_growth_pct"`
	AvgInterest *float64 `json:"trend_avg_interest"`
	Seasonality float64  `json:"seasonality"`
	Score       float64  `json:"score"`
}

// Strategy is the final assembled document. It is rebuilt on every request
// and has no persisted identity.
type Strategy struct {
	TargetProducts  []string        `json:"target_products"`
	RevenueStrategy string          `json:"revenue_strategy"`
	Recommendations []ScoredProduct `json:"recommendations"`
	Notes           []string        `json:"notes"`
	GeneratedAt     string          `json:"generated_at"`
}
