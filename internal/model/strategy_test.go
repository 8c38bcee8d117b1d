package model

import (
	"testing"
	"time"

	"github.com/floracart/insight-service/internal/domain"
)

func TestBuildStrategyTargets(t *testing.T) {
	forecasts := []domain.ForecastEntry{
		{ProductID: "roses", Status: domain.ForecastStatusOK, GrowthPct: fp(12)},
		{ProductID: "tulips", Status: domain.ForecastStatusInsufficientData},
		{ProductID: "lilies", Status: domain.ForecastStatusOK, GrowthPct: fp(-3)},
	}
	topSellers := []domain.TopSeller{
		{ProductID: "tulips", PurchaseCount: 50},
		{ProductID: "roses", PurchaseCount: 40},
		{ProductID: "lilies", PurchaseCount: 30},
		{ProductID: "orchids", PurchaseCount: 20},
	}

	s := BuildStrategy(forecasts, topSellers, nil, SentimentPositive, time.Now())

	// Intersection of top sellers and forecast-ok products, sorted.
	want := []string{"lilies", "roses"}
	if len(s.TargetProducts) != len(want) {
		t.Fatalf("expected %v, got %v", want, s.TargetProducts)
	}
	for i := range want {
		if s.TargetProducts[i] != want[i] {
			t.Errorf("expected %v, got %v", want, s.TargetProducts)
			break
		}
	}
}

func TestBuildStrategyTopN(t *testing.T) {
	scored := make([]domain.ScoredProduct, 8)
	for i := range scored {
		scored[i] = domain.ScoredProduct{ProductID: string(rune('A' + i))}
	}

	s := BuildStrategy(nil, nil, scored, SentimentPositive, time.Now())
	if len(s.Recommendations) != 5 {
		t.Errorf("expected 5 recommendations, got %d", len(s.Recommendations))
	}
	if s.Recommendations[0].ProductID != "A" {
		t.Errorf("expected ranking head preserved, got %s", s.Recommendations[0].ProductID)
	}
}

func TestBuildStrategySentiment(t *testing.T) {
	pos := BuildStrategy(nil, nil, nil, SentimentPositive, time.Now())
	neg := BuildStrategy(nil, nil, nil, SentimentNegative, time.Now())

	if pos.RevenueStrategy == neg.RevenueStrategy {
		t.Error("sentiment flag should pick different revenue strategies")
	}
	if len(pos.Notes) == 0 {
		t.Error("expected fixed plan notes")
	}
}
