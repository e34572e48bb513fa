package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"dealscout/internal/domain"
)

type ListingStore struct {
	db *sqlx.DB
}

func NewListingStore(db *sqlx.DB) *ListingStore {
	return &ListingStore{db: db}
}

// Upsert inserts or refreshes a listing on its (platform, platform_listing_id)
// identity. An update touches attributes and last_seen_at only: status,
// sold_at and days_on_market are never changed here, so a listing that was
// swept to sold stays sold even if it re-appears.
func (s *ListingStore) Upsert(ctx context.Context, listing *domain.Listing) (int64, error) {
	query := `
		INSERT INTO listings (
			platform, platform_listing_id, title, description, price, vin,
			make, model, year, mileage, condition, location, images,
			seller_info, platform_url, status, first_seen_at, last_seen_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			'active', now(), now()
		)
		ON CONFLICT (platform, platform_listing_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			vin = EXCLUDED.vin,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			year = EXCLUDED.year,
			mileage = EXCLUDED.mileage,
			condition = EXCLUDED.condition,
			location = EXCLUDED.location,
			images = EXCLUDED.images,
			seller_info = EXCLUDED.seller_info,
			platform_url = EXCLUDED.platform_url,
			last_seen_at = now(),
			updated_at = now()
		RETURNING id`

	var sellerInfo interface{}
	if len(listing.SellerInfo) > 0 {
		sellerInfo = []byte(listing.SellerInfo)
	}

	var id int64
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		listing.Platform,
		listing.PlatformListingID,
		listing.Title,
		listing.Description,
		listing.Price,
		listing.VIN,
		listing.Make,
		listing.Model,
		listing.Year,
		listing.Mileage,
		listing.Condition,
		listing.Location,
		pq.Array(listing.Images),
		sellerInfo,
		listing.PlatformURL,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetByPlatformID returns the stored listing for a platform identity, or nil
// when none exists.
func (s *ListingStore) GetByPlatformID(ctx context.Context, platform, platformListingID string) (*domain.Listing, error) {
	query := `
		SELECT id, platform, platform_listing_id, title, price, status,
		       sold_at, days_on_market, first_seen_at, last_seen_at
		FROM listings
		WHERE platform = $1 AND platform_listing_id = $2`

	var l domain.Listing
	err := getExecutor(ctx, s.db).QueryRowxContext(ctx, query, platform, platformListingID).Scan(
		&l.ID, &l.Platform, &l.PlatformListingID, &l.Title, &l.Price,
		&l.Status, &l.SoldAt, &l.DaysOnMarket, &l.FirstSeenAt, &l.LastSeenAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *ListingStore) InsertPriceHistory(ctx context.Context, listingID int64, price float64, seenAt time.Time) error {
	_, err := getExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO listing_price_history (listing_id, price, seen_at) VALUES ($1, $2, $3)`,
		listingID, price, seenAt,
	)
	return err
}

// GetStaleActive returns active listings not seen since the given cutoff.
func (s *ListingStore) GetStaleActive(ctx context.Context, lastSeenBefore time.Time) ([]domain.Listing, error) {
	query := `
		SELECT id, platform, platform_listing_id, title, price, vin, make,
		       model, year, mileage, platform_url, first_seen_at, last_seen_at
		FROM listings
		WHERE status = 'active' AND last_seen_at < $1
		ORDER BY last_seen_at`

	rows, err := s.db.QueryContext(ctx, query, lastSeenBefore)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.Platform, &l.PlatformListingID, &l.Title, &l.Price,
			&l.VIN, &l.Make, &l.Model, &l.Year, &l.Mileage,
			&l.PlatformURL, &l.FirstSeenAt, &l.LastSeenAt,
		); err != nil {
			return nil, err
		}
		l.Status = domain.StatusActive
		listings = append(listings, l)
	}

	return listings, rows.Err()
}

// MarkSold transitions an active listing to sold. The status guard makes the
// operation idempotent: a listing already sold is left untouched.
func (s *ListingStore) MarkSold(ctx context.Context, id int64, soldAt time.Time, daysOnMarket int) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE listings
		SET status = 'sold', sold_at = $2, days_on_market = $3, updated_at = now()
		WHERE id = $1 AND status = 'active'`,
		id, soldAt, daysOnMarket,
	)
	return err
}

// PurgeSoldBefore deletes sold listings whose sale predates the cutoff and
// returns the number removed.
func (s *ListingStore) PurgeSoldBefore(ctx context.Context, soldBefore time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM listings WHERE status = 'sold' AND sold_at < $1`,
		soldBefore,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetSoldComparables returns recently sold listings matching make/model
// (case-insensitive) within a closed year range, most recent first.
func (s *ListingStore) GetSoldComparables(ctx context.Context, make, model string, yearMin, yearMax, limit int) ([]domain.Comparable, error) {
	query := `
		SELECT price, mileage, days_on_market, year, sold_at
		FROM listings
		WHERE make ILIKE $1
		  AND model ILIKE $2
		  AND year BETWEEN $3 AND $4
		  AND status = 'sold'
		  AND sold_at IS NOT NULL
		  AND days_on_market IS NOT NULL
		ORDER BY sold_at DESC
		LIMIT $5`

	var comps []domain.Comparable
	err := s.db.SelectContext(ctx, &comps, query, make, model, yearMin, yearMax, limit)
	return comps, err
}
