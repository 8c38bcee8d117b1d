package domain

type RecommendedProduct struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	PriceVND  int64  `json:"price_vnd"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	Fallback    bool   `json:"fallback"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []RecommendedProduct
	CacheHit        bool
	Fallback        bool
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchUserResult struct {
	UserID          string               `json:"user_id"`
	Recommendations []RecommendedProduct `json:"recommendations,omitempty"`
	Status          string               `json:"status"`
	Error           string               `json:"error,omitempty"`
	Message         string               `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalUsers int               `json:"total_users"`
	Results    []BatchUserResult `json:"results"`
	Summary    BatchSummary      `json:"summary"`
	Metadata   BatchMeta         `json:"metadata"`
}
