package service

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"dealscout/internal/config"
	"dealscout/internal/domain"
)

// Neutral result returned when no market data exists at all.
const (
	defaultMedianDays = 14
	defaultPercentile = 50
	defaultScoreValue = 5
)

// CompsEngine derives a resellability score from comparable sold listings:
// same make/model, a closed year band around the query year, optionally
// narrowed to a mileage band.
type CompsEngine struct {
	listings ListingStore
	cfg      config.CompsConfig
	logger   *slog.Logger
}

func NewCompsEngine(listings ListingStore, cfg config.CompsConfig, logger *slog.Logger) *CompsEngine {
	return &CompsEngine{
		listings: listings,
		cfg:      cfg,
		logger:   logger.With("component", "comps"),
	}
}

// Score computes the resellability of a vehicle at the given asking price.
// Store errors and empty result sets resolve to the neutral default, never an
// error.
func (e *CompsEngine) Score(ctx context.Context, make, model string, year int, price float64, mileage int) domain.ResellabilityScore {
	comps, err := e.listings.GetSoldComparables(ctx,
		make, model,
		year-e.cfg.YearBand, year+e.cfg.YearBand,
		e.cfg.MaxComps,
	)
	if err != nil {
		e.logger.Warn("comparables query failed, using neutral default", "error", err)
		return defaultResellability()
	}
	if len(comps) == 0 {
		return defaultResellability()
	}

	final := e.narrowByMileage(comps, mileage)

	medianDays := medianDaysOnMarket(final)
	percentile := pricePercentile(final, price)
	score := scoreFromMedianDays(medianDays)

	// Many comparables means high liquidity confidence; very few means the
	// estimate is shaky.
	if len(final) >= 20 {
		score = clampInt(score+1, 1, 10)
	}
	if len(final) < e.cfg.MinComps {
		score = clampInt(score-1, 1, 10)
	}

	return domain.ResellabilityScore{
		MedianDaysToSell:   medianDays,
		CompCount:          len(final),
		PricePercentile:    percentile,
		ResellabilityScore: score,
		Source:             domain.ScoreSourceComparables,
	}
}

// narrowByMileage keeps comparables within the mileage band (unknown mileage
// passes). If narrowing leaves fewer than MinComps the full set is used
// instead; over-filtering into emptiness would be worse than a loose band.
func (e *CompsEngine) narrowByMileage(comps []domain.Comparable, mileage int) []domain.Comparable {
	var narrowed []domain.Comparable
	for _, c := range comps {
		if c.Mileage == nil || abs(*c.Mileage-mileage) <= e.cfg.MileageBand {
			narrowed = append(narrowed, c)
		}
	}
	if len(narrowed) >= e.cfg.MinComps {
		return narrowed
	}
	return comps
}

func medianDaysOnMarket(comps []domain.Comparable) int {
	var days []int
	for _, c := range comps {
		if c.DaysOnMarket > 0 {
			days = append(days, c.DaysOnMarket)
		}
	}
	if len(days) == 0 {
		return defaultMedianDays
	}
	sort.Ints(days)
	return days[len(days)/2]
}

// pricePercentile is the share of comparable sold prices strictly below the
// query price, 0-100.
func pricePercentile(comps []domain.Comparable, price float64) int {
	var prices []float64
	for _, c := range comps {
		if c.Price > 0 {
			prices = append(prices, c.Price)
		}
	}
	if len(prices) == 0 {
		return defaultPercentile
	}
	below := 0
	for _, p := range prices {
		if p < price {
			below++
		}
	}
	return int(math.Round(float64(below) / float64(len(prices)) * 100))
}

func scoreFromMedianDays(days int) int {
	switch {
	case days <= 3:
		return 10
	case days <= 5:
		return 9
	case days <= 7:
		return 8
	case days <= 10:
		return 7
	case days <= 14:
		return 6
	case days <= 21:
		return 5
	case days <= 30:
		return 4
	case days <= 45:
		return 3
	default:
		return 2
	}
}

func defaultResellability() domain.ResellabilityScore {
	return domain.ResellabilityScore{
		MedianDaysToSell:   defaultMedianDays,
		CompCount:          0,
		PricePercentile:    defaultPercentile,
		ResellabilityScore: defaultScoreValue,
		Source:             domain.ScoreSourceComparables,
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
