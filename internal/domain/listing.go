package domain

import (
	"encoding/json"
	"time"
)

// ListingStatus is the lifecycle state of a marketplace listing.
type ListingStatus string

const (
	StatusActive ListingStatus = "active"
	StatusSold   ListingStatus = "sold"
)

// Listing represents one observed marketplace posting. (Platform, PlatformListingID)
// is the stable identity: re-observing the same pair updates attributes and
// refreshes LastSeenAt, it never creates a second row.
type Listing struct {
	ID                int64
	Platform          string // "facebook" or "craigslist"
	PlatformListingID string
	Title             string
	Description       *string
	Price             float64
	VIN               *string
	Make              *string
	Model             *string
	Year              *int
	Mileage           *int
	Condition         *string
	Location          *string
	Images            []string
	SellerInfo        json.RawMessage
	PlatformURL       string
	Status            ListingStatus
	SoldAt            *time.Time
	DaysOnMarket      *int
	FirstSeenAt       time.Time
	LastSeenAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Comparable is the projection of a sold listing used by the comps engine.
type Comparable struct {
	Price        float64   `db:"price"`
	Mileage      *int      `db:"mileage"`
	DaysOnMarket int       `db:"days_on_market"`
	Year         int       `db:"year"`
	SoldAt       time.Time `db:"sold_at"`
}
