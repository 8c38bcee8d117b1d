package model

import (
	"math"
	"sort"
	"time"

	"github.com/floracart/insight-service/internal/domain"
)

// Weights are the composite-score coefficients. They are applied as given:
// callers may pass weights that do not sum to 1 and no renormalization is
// performed, matching the behavior the strategy outputs were tuned against.
type Weights struct {
	Forecast float64
	Trend    float64
	Season   float64
}

func DefaultWeights() Weights {
	return Weights{Forecast: 0.5, Trend: 0.3, Season: 0.2}
}

// ScoreProducts ranks products by the weighted sum of normalized forecast
// growth, normalized trend interest, and the batch-wide seasonality value
// for asOf. Both signals are scaled relative to the other products in the
// same batch. Missing signals contribute 0 after normalization; an empty
// product list is the caller's bug and fails loudly.
func ScoreProducts(
	productIDs []string,
	growth map[string]*float64,
	interest domain.TrendInterest,
	keywords domain.KeywordMap,
	weights Weights,
	table SeasonTable,
	asOf time.Time,
) ([]domain.ScoredProduct, error) {
	if len(productIDs) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	growthVals := make([]*float64, len(productIDs))
	for i, pid := range productIDs {
		growthVals[i] = growth[pid]
	}
	growthScaled := Scale(growthVals)

	interestVals := make([]*float64, len(productIDs))
	for i, pid := range productIDs {
		kw, ok := keywords[pid]
		if !ok {
			continue
		}
		if v, ok := interest[kw]; ok {
			val := v
			interestVals[i] = &val
		}
	}
	interestScaled := Scale(interestVals)

	// Seasonality is an industry-wide factor, identical for every product
	// in the batch.
	season := Seasonality(asOf, table)

	scored := make([]domain.ScoredProduct, len(productIDs))
	for i, pid := range productIDs {
		s := weights.Forecast*growthScaled[i] + weights.Trend*interestScaled[i] + weights.Season*season
		scored[i] = domain.ScoredProduct{
			ProductID:   pid,
			GrowthPct:   growthVals[i],
			AvgInterest: interestVals[i],
			Seasonality: round3(season),
			Score:       round4(s),
		}
	}

	// Stable: equal scores keep their input order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }
