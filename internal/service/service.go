package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/floracart/insight-service/internal/cache"
	"github.com/floracart/insight-service/internal/domain"
	"github.com/floracart/insight-service/internal/model"
	"github.com/floracart/insight-service/internal/repository"
)

const (
	defaultLimit     = 5
	maxLimit         = 20
	kNeighbors       = 3
	batchConcurrency = 10
	batchRecLimit    = 5
)

type Service struct {
	repo        *repository.Repository
	cache       *cache.Cache
	seasonTable model.SeasonTable
	sentiment   string
}

func NewService(repo *repository.Repository, cache *cache.Cache, seasonTable model.SeasonTable, sentiment string) *Service {
	return &Service{
		repo:        repo,
		cache:       cache,
		seasonTable: seasonTable,
		sentiment:   sentiment,
	}
}

func (s *Service) GetRecommendations(ctx context.Context, userID string, limit int) (*domain.RecommendationResult, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}

	// Check Cache
	cached, found, err := s.cache.GetRecommendations(ctx, userID, limit)
	if err != nil {
		log.Printf("[service] cache get error for user %s: %v", userID, err)
	}

	// Use recommendations from cache if available
	if found {
		return &domain.RecommendationResult{
			Recommendations: cached,
			CacheHit:        true,
		}, nil
	}

	// Cache miss -> generate recommendations
	recs, fallback, err := s.generateRecommendations(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	// Store recommendations in cache
	if cacheErr := s.cache.SetRecommendations(ctx, userID, limit, recs); cacheErr != nil {
		log.Printf("[service] cache set error for user %s: %v", userID, cacheErr)
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
		Fallback:        fallback,
	}, nil
}

func (s *Service) generateRecommendations(ctx context.Context, userID string, limit int) ([]domain.RecommendedProduct, bool, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, err
		}
		return nil, false, fmt.Errorf("fetch user: %w", err)
	}

	txs, err := s.repo.GetTransactions(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("fetch transactions: %w", err)
	}

	m, err := model.BuildMatrix(txs)
	if err != nil {
		return nil, false, fmt.Errorf("build interaction matrix: %w", err)
	}

	productIDs := model.Recommend(userID, m, kNeighbors, limit)

	// Users without usable neighborhoods (no purchase history, or neighbors
	// with nothing new to offer) get the popularity fallback.
	if len(productIDs) == 0 {
		popular, err := s.repo.GetPopularProducts(ctx, limit)
		if err != nil {
			return nil, false, fmt.Errorf("fetch popular products: %w", err)
		}
		return toRecommended(popular), true, nil
	}

	products, err := s.repo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, false, fmt.Errorf("fetch recommended products: %w", err)
	}

	return toRecommended(products), false, nil
}

func (s *Service) GetBatchRecommendations(ctx context.Context, page, limit int) (*domain.BatchResponse, error) {
	start := time.Now()

	// Fetch paginated user IDs
	userIDs, err := s.repo.GetUserIDsPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch user ids: %w", err)
	}

	// Fetch total user
	totalUsers, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	// One matrix for the whole page; it is read-only from here on.
	txs, err := s.repo.GetTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch transactions: %w", err)
	}
	m, err := model.BuildMatrix(txs)
	if err != nil {
		return nil, fmt.Errorf("build interaction matrix: %w", err)
	}

	// Process users concurrently with bounded worker pool
	results := make([]domain.BatchUserResult, len(userIDs))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, userID := range userIDs {
		wg.Add(1)
		go func(idx int, uid string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processUserForBatch(ctx, uid, m)
		}(i, userID)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Page:       page,
		Limit:      limit,
		TotalUsers: totalUsers,
		Results:    results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single user against the shared matrix,
// capturing errors.
func (s *Service) processUserForBatch(ctx context.Context, userID string, m *model.Matrix) domain.BatchUserResult {
	productIDs := model.Recommend(userID, m, kNeighbors, batchRecLimit)
	if len(productIDs) == 0 {
		popular, err := s.repo.GetPopularProducts(ctx, batchRecLimit)
		if err != nil {
			log.Printf("[service] batch: failed for user %s: %v", userID, err)
			code, msg := categorizeError(err)
			return domain.BatchUserResult{
				UserID:  userID,
				Status:  domain.StatusFailed,
				Error:   code,
				Message: msg,
			}
		}
		return domain.BatchUserResult{
			UserID:          userID,
			Recommendations: toRecommended(popular),
			Status:          domain.StatusSuccess,
		}
	}

	products, err := s.repo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		log.Printf("[service] batch: failed for user %s: %v", userID, err)
		code, msg := categorizeError(err)
		return domain.BatchUserResult{
			UserID:  userID,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchUserResult{
		UserID:          userID,
		Recommendations: toRecommended(products),
		Status:          domain.StatusSuccess,
	}
}

// Record an order line and drop every cache the new purchase invalidates.
func (s *Service) RecordOrder(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.repo.GetProductByID(ctx, productID); err != nil {
		return err
	}

	if err := s.repo.AddOrder(ctx, userID, productID, quantity); err != nil {
		return err
	}
	if err := s.cache.ClearUserCache(ctx, userID); err != nil {
		log.Printf("[service] cache invalidation error for user %s: %v", userID, err)
	}
	if err := s.cache.ClearStrategy(ctx); err != nil {
		log.Printf("[service] strategy cache invalidation error: %v", err)
	}
	return nil
}

func (s *Service) GetPopularProducts(ctx context.Context, limit int) ([]domain.RecommendedProduct, error) {
	if limit <= 0 {
		limit = defaultLimit
	} else if limit > maxLimit {
		limit = maxLimit
	}
	popular, err := s.repo.GetPopularProducts(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch popular products: %w", err)
	}
	return toRecommended(popular), nil
}

func toRecommended(products []domain.Product) []domain.RecommendedProduct {
	recs := make([]domain.RecommendedProduct, 0, len(products))
	for _, p := range products {
		recs = append(recs, domain.RecommendedProduct{
			ProductID: p.ID,
			Name:      p.Name,
			PriceVND:  p.PriceVND,
		})
	}
	return recs
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, domain.ErrUserNotFound) {
		return "user_not_found", "user not found"
	}
	if errors.Is(err, domain.ErrEmptyCatalog) {
		return "empty_catalog", "no products available for scoring"
	}
	return "internal_error", "an unexpected error occurred"
}
