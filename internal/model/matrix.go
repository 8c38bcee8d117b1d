package model

import (
	"fmt"

	"github.com/floracart/insight-service/internal/domain"
)

// Matrix is the user x product interaction matrix: cumulative purchased
// quantity per (user, product) pair. Users and Products keep the order in
// which they were first seen in the transaction stream, so every
// similarity and tie-break downstream is reproducible for the same input.
type Matrix struct {
	Users    []string
	Products []string

	userIdx    map[string]int
	productIdx map[string]int
	counts     []map[int]float64 // per user row, product index -> quantity
}

// BuildMatrix accumulates quantity per (user, product). Zero quantities are
// skipped so every stored entry is strictly positive; a negative quantity is
// malformed input and fails the whole build.
func BuildMatrix(txs []domain.Transaction) (*Matrix, error) {
	m := &Matrix{
		userIdx:    make(map[string]int),
		productIdx: make(map[string]int),
	}

	for _, tx := range txs {
		if tx.Quantity < 0 {
			return nil, fmt.Errorf("transaction user=%s product=%s quantity=%d: %w",
				tx.UserID, tx.ProductID, tx.Quantity, domain.ErrInvalidQuantity)
		}
		if tx.Quantity == 0 {
			continue
		}

		u, ok := m.userIdx[tx.UserID]
		if !ok {
			u = len(m.Users)
			m.userIdx[tx.UserID] = u
			m.Users = append(m.Users, tx.UserID)
			m.counts = append(m.counts, make(map[int]float64))
		}
		p, ok := m.productIdx[tx.ProductID]
		if !ok {
			p = len(m.Products)
			m.productIdx[tx.ProductID] = p
			m.Products = append(m.Products, tx.ProductID)
		}

		m.counts[u][p] += float64(tx.Quantity)
	}

	return m, nil
}

// HasUser reports whether the user has at least one purchase.
func (m *Matrix) HasUser(userID string) bool {
	_, ok := m.userIdx[userID]
	return ok
}

// Quantity returns the cumulative purchased quantity, 0 for absent pairs.
func (m *Matrix) Quantity(userID, productID string) float64 {
	u, ok := m.userIdx[userID]
	if !ok {
		return 0
	}
	p, ok := m.productIdx[productID]
	if !ok {
		return 0
	}
	return m.counts[u][p]
}

// Row materializes a user's dense vector over every observed product column,
// in product order. Returns nil for unknown users.
func (m *Matrix) Row(userID string) []float64 {
	u, ok := m.userIdx[userID]
	if !ok {
		return nil
	}
	return m.row(u)
}

func (m *Matrix) row(u int) []float64 {
	vec := make([]float64, len(m.Products))
	for p, qty := range m.counts[u] {
		vec[p] = qty
	}
	return vec
}
