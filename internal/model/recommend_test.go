package model

import (
	"testing"

	"github.com/floracart/insight-service/internal/domain"
)

func buildTestMatrix(t *testing.T, txs []domain.Transaction) *Matrix {
	t.Helper()
	m, err := BuildMatrix(txs)
	if err != nil {
		t.Fatalf("BuildMatrix failed: %v", err)
	}
	return m
}

func TestRecommendNeighborhood(t *testing.T) {
	// U1 shares A and B with U2, nothing with U3. With two neighbor slots
	// U2 is the only informative one, so U1 gets C at weight 3.
	m := buildTestMatrix(t, []domain.Transaction{
		tx("u1", "A", 2),
		tx("u1", "B", 1),
		tx("u2", "A", 1),
		tx("u2", "B", 1),
		tx("u2", "C", 3),
		tx("u3", "C", 1),
	})

	recs := Recommend("u1", m, 2, 5)
	if len(recs) != 1 || recs[0] != "C" {
		t.Errorf("expected [C], got %v", recs)
	}
}

func TestRecommendUnknownUser(t *testing.T) {
	m := buildTestMatrix(t, []domain.Transaction{tx("u1", "A", 1)})

	if recs := Recommend("ghost", m, 3, 5); recs != nil {
		t.Errorf("unknown user should get nil, got %v", recs)
	}
}

func TestRecommendExcludesOwnedProducts(t *testing.T) {
	m := buildTestMatrix(t, []domain.Transaction{
		tx("u1", "A", 1),
		tx("u1", "B", 1),
		tx("u2", "A", 2),
		tx("u2", "B", 2),
		tx("u2", "C", 1),
		tx("u2", "D", 1),
	})

	recs := Recommend("u1", m, 3, 5)
	seen := make(map[string]bool)
	for _, pid := range recs {
		if pid == "A" || pid == "B" {
			t.Errorf("recommended already-owned product %s", pid)
		}
		if seen[pid] {
			t.Errorf("duplicate recommendation %s", pid)
		}
		seen[pid] = true
	}
}

func TestRecommendRanksByAccumulatedWeight(t *testing.T) {
	// Both neighbors own D (1+1=2) which outweighs C (1).
	m := buildTestMatrix(t, []domain.Transaction{
		tx("u1", "A", 1),
		tx("u2", "A", 1),
		tx("u2", "C", 1),
		tx("u2", "D", 1),
		tx("u3", "A", 1),
		tx("u3", "D", 1),
	})

	recs := Recommend("u1", m, 3, 5)
	if len(recs) != 2 || recs[0] != "D" || recs[1] != "C" {
		t.Errorf("expected [D C], got %v", recs)
	}
}

func TestRecommendLimitsResults(t *testing.T) {
	m := buildTestMatrix(t, []domain.Transaction{
		tx("u1", "A", 1),
		tx("u2", "A", 1),
		tx("u2", "B", 5),
		tx("u2", "C", 4),
		tx("u2", "D", 3),
	})

	recs := Recommend("u1", m, 3, 2)
	if len(recs) != 2 {
		t.Errorf("expected 2 results, got %d", len(recs))
	}
	if recs[0] != "B" || recs[1] != "C" {
		t.Errorf("expected [B C], got %v", recs)
	}
}

func TestCosineZeroVector(t *testing.T) {
	if sim := cosine([]float64{0, 0}, []float64{1, 2}); sim != 0 {
		t.Errorf("zero vector similarity should be 0, got %f", sim)
	}
	if sim := cosine([]float64{1, 2}, []float64{2, 4}); sim < 0.999 {
		t.Errorf("parallel vectors should be ~1, got %f", sim)
	}
}
