package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"dealscout/internal/config"
	"dealscout/internal/domain"
)

// LifecycleService owns listing state transitions: ingesting scraped
// observations, sweeping stale active listings to sold, and purging sold
// listings past the retention window. The sweep is the sole writer of sold_at
// and days_on_market.
type LifecycleService struct {
	listings  ListingStore
	txManager TransactionManager
	publisher EventPublisher
	cfg       config.LifecycleConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewLifecycleService(
	listings ListingStore,
	txManager TransactionManager,
	publisher EventPublisher,
	cfg config.LifecycleConfig,
	logger *slog.Logger,
) *LifecycleService {
	return &LifecycleService{
		listings:  listings,
		txManager: txManager,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger.With("component", "lifecycle"),
		now:       time.Now,
	}
}

// Observe ingests one scraped listing. The (platform, platform_listing_id)
// pair is a stable identity: a re-observation updates attributes and refreshes
// last_seen, never creates a duplicate. A price change is recorded in the
// price history within the same transaction. A listing that was already
// marked sold keeps its sold state; re-appearance never resets it to active.
func (s *LifecycleService) Observe(ctx context.Context, listing *domain.Listing) error {
	if listing.Platform == "" || listing.PlatformListingID == "" {
		return fmt.Errorf("listing identity missing: platform=%q platform_listing_id=%q",
			listing.Platform, listing.PlatformListingID)
	}

	prev, err := s.listings.GetByPlatformID(ctx, listing.Platform, listing.PlatformListingID)
	if err != nil {
		return fmt.Errorf("lookup listing: %w", err)
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.listings.Upsert(txCtx, listing)
		if err != nil {
			return fmt.Errorf("upsert listing: %w", err)
		}

		if prev != nil && prev.Price != listing.Price {
			if err := s.listings.InsertPriceHistory(txCtx, id, listing.Price, s.now()); err != nil {
				return fmt.Errorf("record price change: %w", err)
			}
			s.logger.Debug("price changed",
				"platform", listing.Platform,
				"platform_listing_id", listing.PlatformListingID,
				"old", prev.Price,
				"new", listing.Price,
			)
		}

		return nil
	})
}

// SweepStale marks active listings unseen past the stale threshold as sold.
// days_on_market is set exactly once here, from first-seen to now, floored at
// one day. A per-listing failure is counted and the sweep continues; the
// returned stats carry the count that succeeded. Running the sweep again
// immediately is a no-op.
func (s *LifecycleService) SweepStale(ctx context.Context) (*domain.SweepStats, error) {
	start := s.now()
	stats := &domain.SweepStats{}

	cutoff := start.Add(-s.cfg.StaleThreshold)
	stale, err := s.listings.GetStaleActive(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("select stale listings: %w", err)
	}
	stats.Scanned = len(stale)

	for i := range stale {
		listing := &stale[i]
		soldAt := s.now()
		days := daysOnMarket(listing.FirstSeenAt, soldAt)

		if err := s.listings.MarkSold(ctx, listing.ID, soldAt, days); err != nil {
			s.logger.Warn("failed to mark listing sold",
				"listing_id", listing.ID,
				"error", err,
			)
			stats.Errors++
			continue
		}
		stats.Marked++

		listing.Status = domain.StatusSold
		listing.SoldAt = &soldAt
		listing.DaysOnMarket = &days

		if s.publisher != nil {
			if err := s.publisher.PublishSold(ctx, listing); err != nil {
				s.logger.Warn("failed to publish sold event",
					"listing_id", listing.ID,
					"error", err,
				)
			} else {
				stats.Published++
			}
		}
	}

	stats.Duration = time.Since(start)

	s.logger.Info("stale sweep completed",
		"scanned", stats.Scanned,
		"marked", stats.Marked,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Purge deletes sold listings whose sale is older than the retention window.
// They have served their purpose as comparable-sales data.
func (s *LifecycleService) Purge(ctx context.Context) (*domain.PurgeStats, error) {
	start := s.now()

	cutoff := start.AddDate(0, 0, -s.cfg.RetentionDays)
	deleted, err := s.listings.PurgeSoldBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("purge sold listings: %w", err)
	}

	stats := &domain.PurgeStats{
		Deleted:  deleted,
		Duration: time.Since(start),
	}

	s.logger.Info("retention purge completed",
		"deleted", stats.Deleted,
		"cutoff", cutoff,
		"duration", stats.Duration,
	)

	return stats, nil
}

// daysOnMarket rounds the elapsed span to whole days, never below one.
func daysOnMarket(firstSeen, soldAt time.Time) int {
	days := int(math.Round(soldAt.Sub(firstSeen).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
