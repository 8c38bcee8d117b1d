package domain

const (
	ForecastStatusOK               = "ok"
	ForecastStatusInsufficientData = "insufficient_data"
)

// ForecastEntry is one row of the externally produced demand forecast.
// GrowthPct is nil when the forecaster had too little history for the
// product (StatusInsufficientData).
type ForecastEntry struct {
	ProductID string   `json:"product_id"`
	Status    string   `json:"status"`
	GrowthPct *float64 `json:"forecast_growth_pct"`
}
