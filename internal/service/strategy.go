package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/floracart/insight-service/internal/domain"
	"github.com/floracart/insight-service/internal/model"
	"golang.org/x/sync/errgroup"
)

const topSellerLimit = 8

// GetStrategy assembles the product strategy document: composite-scored
// ranking over the whole catalog plus the target-product intersection.
// The document is cached until the next order invalidates it.
func (s *Service) GetStrategy(ctx context.Context) (*domain.Strategy, bool, error) {
	cached, found, err := s.cache.GetStrategy(ctx)
	if err != nil {
		log.Printf("[service] strategy cache get error: %v", err)
	}
	if found {
		return cached, true, nil
	}

	// The feeds are independent; load them concurrently.
	var (
		productIDs []string
		topSellers []domain.TopSeller
		forecasts  []domain.ForecastEntry
		interest   domain.TrendInterest
		keywords   domain.KeywordMap
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productIDs, err = s.repo.GetProductIDs(gctx)
		return err
	})
	g.Go(func() (err error) {
		topSellers, err = s.repo.GetTopSellers(gctx, topSellerLimit)
		return err
	})
	g.Go(func() (err error) {
		forecasts, err = s.repo.GetForecasts(gctx)
		return err
	})
	g.Go(func() (err error) {
		interest, err = s.repo.GetTrendInterest(gctx)
		return err
	})
	g.Go(func() (err error) {
		keywords, err = s.repo.GetKeywordMap(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, false, fmt.Errorf("load strategy feeds: %w", err)
	}

	growth := make(map[string]*float64, len(forecasts))
	for _, f := range forecasts {
		growth[f.ProductID] = f.GrowthPct
	}

	scored, err := model.ScoreProducts(productIDs, growth, interest, keywords,
		model.DefaultWeights(), s.seasonTable, time.Now())
	if err != nil {
		return nil, false, err
	}

	strategy := model.BuildStrategy(forecasts, topSellers, scored, s.sentiment, time.Now())

	if cacheErr := s.cache.SetStrategy(ctx, &strategy); cacheErr != nil {
		log.Printf("[service] strategy cache set error: %v", cacheErr)
	}

	return &strategy, false, nil
}
