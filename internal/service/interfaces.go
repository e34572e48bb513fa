package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"dealscout/internal/domain"
)

type ListingStore interface {
	GetByPlatformID(ctx context.Context, platform, platformListingID string) (*domain.Listing, error)
	Upsert(ctx context.Context, listing *domain.Listing) (int64, error)
	InsertPriceHistory(ctx context.Context, listingID int64, price float64, seenAt time.Time) error
	GetStaleActive(ctx context.Context, lastSeenBefore time.Time) ([]domain.Listing, error)
	MarkSold(ctx context.Context, id int64, soldAt time.Time, daysOnMarket int) error
	PurgeSoldBefore(ctx context.Context, soldBefore time.Time) (int64, error)
	GetSoldComparables(ctx context.Context, make, model string, yearMin, yearMax, limit int) ([]domain.Comparable, error)
}

type ValuationCache interface {
	Get(ctx context.Context, make, model string, year int, vin string) (*domain.ValuationEstimate, error)
	Insert(ctx context.Context, estimate *domain.ValuationEstimate) error
}

type JobStore interface {
	Enqueue(ctx context.Context, jobType string, payload []byte) (int64, error)
	ClaimNext(ctx context.Context) (*domain.Job, error)
	MarkCompleted(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, reason string) error
}

// PricingClient talks to an optional external pricing API. It may be nil
// (unconfigured), in which case the retention model is authoritative.
type PricingClient interface {
	FetchValuation(ctx context.Context, req domain.ValuationRequest) (*domain.ValuationEstimate, error)
}

// GenerativeClient produces a lower-confidence resellability opinion when too
// few comparables exist. Failures must never reach the caller.
type GenerativeClient interface {
	EstimateResellability(ctx context.Context, make, model string, year int, price float64) (*domain.ResellabilityScore, error)
}

type EventPublisher interface {
	PublishSold(ctx context.Context, listing *domain.Listing) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
