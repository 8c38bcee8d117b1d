package handler

import "github.com/floracart/insight-service/internal/domain"

type RecommendationResponse struct {
	UserID          string                      `json:"user_id"`
	Recommendations []domain.RecommendedProduct `json:"recommendations"`
	Metadata        domain.RecommendationMeta   `json:"metadata"`
}

type PopularResponse struct {
	Products []domain.RecommendedProduct `json:"products"`
}

type StrategyResponse struct {
	Strategy *domain.Strategy          `json:"strategy"`
	Metadata domain.RecommendationMeta `json:"metadata"`
}

type OrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
