package domain

import "time"

// ValuationSource tells the caller which tier of the fallback chain produced
// an estimate, so degraded paths are observable instead of silent.
type ValuationSource string

const (
	SourceCache          ValuationSource = "cache"
	SourcePricingAPI     ValuationSource = "pricing_api"
	SourceRetentionModel ValuationSource = "retention_model"
)

// ScoreSource distinguishes comparables-backed liquidity scores from
// generative-model opinions, which carry lower confidence.
type ScoreSource string

const (
	ScoreSourceComparables ScoreSource = "comparables"
	ScoreSourceGenerative  ScoreSource = "generative_fallback"
)

// ValuationRequest identifies the vehicle being priced.
type ValuationRequest struct {
	VIN       string
	Make      string
	Model     string
	Year      int
	Mileage   int
	Condition string
}

// ValuationEstimate is a priced opinion about a vehicle. Immutable once
// created; past ExpiresAt it is treated as absent, not updated in place.
type ValuationEstimate struct {
	ID             int64           `db:"id"`
	VIN            *string         `db:"vin"`
	Make           string          `db:"make"`
	Model          string          `db:"model"`
	Year           int             `db:"year"`
	Mileage        int             `db:"mileage"`
	Condition      string          `db:"condition"`
	EstimatedValue float64         `db:"estimated_value"`
	LowValue       float64         `db:"low_value"`
	HighValue      float64         `db:"high_value"`
	Source         ValuationSource `db:"-"`
	FetchedAt      time.Time       `db:"fetched_at"`
	ExpiresAt      time.Time       `db:"expires_at"`
}

// ResellabilityScore is a liquidity opinion derived on demand, never persisted.
type ResellabilityScore struct {
	MedianDaysToSell   int         `json:"median_days_to_sell"`
	CompCount          int         `json:"comp_count"`
	PricePercentile    int         `json:"price_percentile"`
	ResellabilityScore int         `json:"resellability_score"`
	Source             ScoreSource `json:"source"`
}
