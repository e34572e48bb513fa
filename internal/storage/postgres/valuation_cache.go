package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"dealscout/internal/domain"
)

// ValuationCacheStore persists valuation estimates. Rows are immutable: a
// re-fetch inserts a new row and expired rows are simply ignored at read
// time, never updated in place.
type ValuationCacheStore struct {
	db *sqlx.DB
}

func NewValuationCacheStore(db *sqlx.DB) *ValuationCacheStore {
	return &ValuationCacheStore{db: db}
}

// Get returns the freshest non-expired estimate for the vehicle identity, or
// nil on a miss. When a VIN is supplied the match is VIN-specific.
func (s *ValuationCacheStore) Get(ctx context.Context, make, model string, year int, vin string) (*domain.ValuationEstimate, error) {
	query := `
		SELECT id, vin, make, model, year, mileage, condition,
		       estimated_value, low_value, high_value, fetched_at, expires_at
		FROM valuations
		WHERE make = $1 AND model = $2 AND year = $3 AND expires_at > $4`
	args := []interface{}{make, model, year, time.Now()}

	if vin != "" {
		query += ` AND vin = $5`
		args = append(args, vin)
	}
	query += ` ORDER BY fetched_at DESC LIMIT 1`

	var est domain.ValuationEstimate
	err := s.db.GetContext(ctx, &est, query, args...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (s *ValuationCacheStore) Insert(ctx context.Context, est *domain.ValuationEstimate) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO valuations (
			vin, make, model, year, mileage, condition,
			estimated_value, low_value, high_value, fetched_at, expires_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		est.VIN,
		est.Make,
		est.Model,
		est.Year,
		est.Mileage,
		est.Condition,
		est.EstimatedValue,
		est.LowValue,
		est.HighValue,
		est.FetchedAt,
		est.ExpiresAt,
	)
	return err
}
