package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dealscout/internal/domain"
	"dealscout/internal/valuation"
)

// ValuationService is the public entry point for valuation and resellability
// queries. It composes the fallback chain cache -> pricing API -> retention
// model, and comps engine -> generative estimator. Both operations are
// fail-soft: they always return a well-formed result, never an error.
type ValuationService struct {
	cache      ValuationCache
	pricing    PricingClient
	generative GenerativeClient
	estimator  *valuation.Estimator
	comps      *CompsEngine
	cacheTTL   time.Duration
	minComps   int
	logger     *slog.Logger
	now        func() time.Time
}

func NewValuationService(
	cache ValuationCache,
	pricing PricingClient,
	generative GenerativeClient,
	estimator *valuation.Estimator,
	comps *CompsEngine,
	cacheTTL time.Duration,
	minComps int,
	logger *slog.Logger,
) *ValuationService {
	return &ValuationService{
		cache:      cache,
		pricing:    pricing,
		generative: generative,
		estimator:  estimator,
		comps:      comps,
		cacheTTL:   cacheTTL,
		minComps:   minComps,
		logger:     logger.With("component", "valuation"),
		now:        time.Now,
	}
}

// GetValuation returns a price estimate for the requested vehicle. A
// non-expired cached estimate short-circuits the chain entirely; otherwise the
// external pricing API is preferred and the retention model is the terminal
// fallback. The new estimate is cached best-effort.
func (s *ValuationService) GetValuation(ctx context.Context, req domain.ValuationRequest) *domain.ValuationEstimate {
	req = normalizeRequest(req)

	cached, err := s.cache.Get(ctx, req.Make, req.Model, req.Year, req.VIN)
	if err != nil {
		s.logger.Warn("cache read failed", "error", err)
	} else if cached != nil {
		cached.Source = domain.SourceCache
		return cached
	}

	est := s.fetchValuation(ctx, req)

	// A cache-write failure must not fail the read that triggered it.
	if err := s.cache.Insert(ctx, est); err != nil {
		s.logger.Warn("cache write failed", "error", err)
	}

	return est
}

func (s *ValuationService) fetchValuation(ctx context.Context, req domain.ValuationRequest) *domain.ValuationEstimate {
	if s.pricing != nil {
		est, err := s.pricing.FetchValuation(ctx, req)
		switch {
		case err != nil:
			s.logger.Warn("pricing api unavailable, falling back to retention model", "error", err)
		case est.LowValue > est.EstimatedValue || est.EstimatedValue > est.HighValue || est.EstimatedValue <= 0:
			s.logger.Warn("pricing api returned malformed range, falling back to retention model",
				"low", est.LowValue, "point", est.EstimatedValue, "high", est.HighValue)
		default:
			est.Source = domain.SourcePricingAPI
			s.stamp(est, req)
			return est
		}
	}

	e := s.estimator.Estimate(req.Make, req.Model, req.Year, req.Mileage, req.Condition)
	est := &domain.ValuationEstimate{
		EstimatedValue: e.Point,
		LowValue:       e.Low,
		HighValue:      e.High,
		Source:         domain.SourceRetentionModel,
	}
	s.stamp(est, req)
	return est
}

func (s *ValuationService) stamp(est *domain.ValuationEstimate, req domain.ValuationRequest) {
	est.Make = req.Make
	est.Model = req.Model
	est.Year = req.Year
	est.Mileage = req.Mileage
	est.Condition = req.Condition
	if req.VIN != "" {
		est.VIN = &req.VIN
	}
	now := s.now()
	est.FetchedAt = now
	est.ExpiresAt = now.Add(s.cacheTTL)
}

// GetResellability returns a liquidity opinion for the vehicle. When too few
// comparables exist the generative estimator provides a secondary,
// lower-confidence opinion tagged with its own provenance.
func (s *ValuationService) GetResellability(ctx context.Context, make, model string, year int, price float64, mileage int) domain.ResellabilityScore {
	score := s.comps.Score(ctx, make, model, year, price, mileage)
	if score.CompCount >= s.minComps || s.generative == nil {
		return score
	}

	gen, err := s.generative.EstimateResellability(ctx, make, model, year, price)
	if err != nil {
		s.logger.Warn("generative estimator failed, using neutral fallback", "error", err)
		return domain.ResellabilityScore{
			MedianDaysToSell:   defaultMedianDays,
			CompCount:          score.CompCount,
			PricePercentile:    defaultPercentile,
			ResellabilityScore: defaultScoreValue,
			Source:             domain.ScoreSourceGenerative,
		}
	}

	clamped := clampScore(*gen)
	clamped.CompCount = score.CompCount
	clamped.Source = domain.ScoreSourceGenerative
	return clamped
}

func clampScore(s domain.ResellabilityScore) domain.ResellabilityScore {
	s.MedianDaysToSell = clampInt(s.MedianDaysToSell, 1, 60)
	s.ResellabilityScore = clampInt(s.ResellabilityScore, 1, 10)
	s.PricePercentile = clampInt(s.PricePercentile, 0, 100)
	return s
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeRequest(req domain.ValuationRequest) domain.ValuationRequest {
	req.Make = strings.ToLower(strings.TrimSpace(req.Make))
	req.Model = strings.ToLower(strings.TrimSpace(req.Model))
	req.Condition = strings.ToLower(strings.TrimSpace(req.Condition))
	req.VIN = strings.ToUpper(strings.TrimSpace(req.VIN))
	return req
}
