package model

import (
	"errors"
	"testing"
	"time"

	"github.com/floracart/insight-service/internal/domain"
)

// fixedSeason pins the batch seasonality at the given weight for any date
// in the given month.
func fixedSeason(mo time.Month, weight float64) SeasonTable {
	return SeasonTable{SeasonMonths: []time.Month{mo}, SeasonWeight: weight}
}

func TestScoreProductsWeightedSum(t *testing.T) {
	products := []string{"A", "B", "C"}
	growth := map[string]*float64{"A": fp(50), "C": fp(-10)}
	interest := domain.TrendInterest{"fresh flowers": 80, "wedding flowers": 40}
	keywords := domain.KeywordMap{"A": "fresh flowers", "B": "wedding flowers"}

	scored, err := ScoreProducts(products, growth, interest, keywords,
		DefaultWeights(), fixedSeason(time.June, 0.4), day(2025, time.June, 15))
	if err != nil {
		t.Fatalf("ScoreProducts failed: %v", err)
	}

	// Growth scales to [1,0,0], interest to [1,0,0], season is 0.4:
	// A = 0.5 + 0.3 + 0.08 = 0.88, B = C = 0.08.
	if scored[0].ProductID != "A" || scored[0].Score != 0.88 {
		t.Errorf("expected A=0.88 first, got %s=%f", scored[0].ProductID, scored[0].Score)
	}
	if scored[1].Score != 0.08 || scored[2].Score != 0.08 {
		t.Errorf("expected ties at 0.08, got %f and %f", scored[1].Score, scored[2].Score)
	}
	// Stable sort keeps B before C.
	if scored[1].ProductID != "B" || scored[2].ProductID != "C" {
		t.Errorf("tie-break lost input order: %s before %s", scored[1].ProductID, scored[2].ProductID)
	}
}

func TestScoreProductsEmptyCatalog(t *testing.T) {
	_, err := ScoreProducts(nil, nil, nil, nil,
		DefaultWeights(), DefaultSeasonTable(), time.Now())
	if !errors.Is(err, domain.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestScoreProductsWeightsNotRenormalized(t *testing.T) {
	// Weights summing to 0.8 and 1.2 are applied as given. A single present
	// growth value is a flat signal and scales to 0.5.
	products := []string{"A"}
	growth := map[string]*float64{"A": fp(10)}
	season := fixedSeason(time.June, 0.4)
	asOf := day(2025, time.June, 15)

	under, err := ScoreProducts(products, growth, nil, nil,
		Weights{Forecast: 0.4, Trend: 0.2, Season: 0.2}, season, asOf)
	if err != nil {
		t.Fatalf("ScoreProducts failed: %v", err)
	}
	if under[0].Score != 0.28 {
		t.Errorf("weights summing to 0.8: expected 0.28, got %f", under[0].Score)
	}

	over, err := ScoreProducts(products, growth, nil, nil,
		Weights{Forecast: 0.6, Trend: 0.3, Season: 0.3}, season, asOf)
	if err != nil {
		t.Fatalf("ScoreProducts failed: %v", err)
	}
	if over[0].Score != 0.42 {
		t.Errorf("weights summing to 1.2: expected 0.42, got %f", over[0].Score)
	}
}

func TestScoreProductsMissingKeyword(t *testing.T) {
	products := []string{"A", "B"}
	interest := domain.TrendInterest{"fresh flowers": 80}
	keywords := domain.KeywordMap{"A": "fresh flowers"}

	scored, err := ScoreProducts(products, nil, interest, keywords,
		DefaultWeights(), fixedSeason(time.June, 0), day(2025, time.June, 15))
	if err != nil {
		t.Fatalf("ScoreProducts failed: %v", err)
	}

	if scored[0].ProductID != "A" {
		t.Errorf("expected A ranked first, got %s", scored[0].ProductID)
	}
	if scored[1].AvgInterest != nil {
		t.Errorf("unmapped product should have nil interest, got %v", *scored[1].AvgInterest)
	}
}
