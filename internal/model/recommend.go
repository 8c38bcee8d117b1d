package model

import (
	"math"
	"sort"
)

const (
	DefaultNeighbors = 3
	DefaultResults   = 5
)

// Recommend returns up to kResults product IDs for the target user, derived
// from the purchases of the kNeighbors most similar other users. An unknown
// user or an empty matrix yields an empty result, never an error; callers
// are expected to fall back to a popularity list.
func Recommend(userID string, m *Matrix, kNeighbors, kResults int) []string {
	if kNeighbors <= 0 {
		kNeighbors = DefaultNeighbors
	}
	if kResults <= 0 {
		kResults = DefaultResults
	}

	target, ok := m.userIdx[userID]
	if !ok {
		return nil
	}

	targetRow := m.row(target)

	// Similarity of every other user to the target, kept in row order so
	// that the later stable sort breaks ties deterministically.
	type neighbor struct {
		user int
		sim  float64
	}
	neighbors := make([]neighbor, 0, len(m.Users)-1)
	for u := range m.Users {
		if u == target {
			continue
		}
		neighbors = append(neighbors, neighbor{user: u, sim: cosine(targetRow, m.row(u))})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].sim > neighbors[j].sim
	})
	if len(neighbors) > kNeighbors {
		neighbors = neighbors[:kNeighbors]
	}

	// Accumulate recommendation weight for products the target has not
	// bought: the summed quantity across informative neighbors. A neighbor
	// with zero or negative similarity shares nothing with the target and
	// contributes no weight.
	weights := make(map[int]float64)
	order := make(map[int]int) // product -> first-encounter rank, for ties
	next := 0
	for _, n := range neighbors {
		if n.sim <= 0 {
			continue
		}
		for p := 0; p < len(m.Products); p++ {
			qty := m.counts[n.user][p]
			if qty <= 0 || targetRow[p] > 0 {
				continue
			}
			if _, seen := weights[p]; !seen {
				order[p] = next
				next++
			}
			weights[p] += qty
		}
	}

	ranked := make([]int, 0, len(weights))
	for p := range weights {
		ranked = append(ranked, p)
	}
	sort.Slice(ranked, func(i, j int) bool {
		wi, wj := weights[ranked[i]], weights[ranked[j]]
		if wi != wj {
			return wi > wj
		}
		return order[ranked[i]] < order[ranked[j]]
	})
	if len(ranked) > kResults {
		ranked = ranked[:kResults]
	}

	out := make([]string, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, m.Products[p])
	}
	return out
}

// cosine returns the cosine similarity of two equal-length vectors.
// A zero vector has no direction; similarity against it is 0, not NaN.
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
