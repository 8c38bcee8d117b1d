package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/floracart/insight-service/internal/domain"
)

// GET /strategy
func (h *Handler) GetStrategy(w http.ResponseWriter, r *http.Request) {
	strategy, cacheHit, err := h.service.GetStrategy(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCatalog) {
			writeError(w, http.StatusConflict, "empty_catalog",
				"No products available to rank; seed the catalog first")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, StrategyResponse{
		Strategy: strategy,
		Metadata: domain.RecommendationMeta{
			CacheHit:    cacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(strategy.Recommendations),
		},
	})
}

// GET /products/popular
func (h *Handler) GetPopularProducts(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 20 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	products, err := h.service.GetPopularProducts(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, PopularResponse{Products: products})
}
