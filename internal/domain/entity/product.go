package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a physical good offered by a user, optionally through their
// business. A product may carry an expiration timestamp (e.g. a limited
// offer); expired products are filtered from public listings at read time.
type Product struct {
	ID          uuid.UUID
	UserID      uuid.UUID  // The publishing user.
	BusinessID  *uuid.UUID // The owning business, nil for vendors without one.
	CityID      uuid.UUID
	Name        string
	Description string
	Category    string
	Price       float64
	Condition   string // e.g. "NEW", "USED".
	Images      []string
	Stock       int
	Status      ListingStatus
	ExpiresAt   *time.Time // Optional offer expiration. Nil means no time bound.
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Live reports whether the product is visible to the public at the given
// instant: active status and not past its optional expiration.
func (p *Product) Live(now time.Time) bool {
	if p.Status != ListingStatusActive {
		return false
	}

	return p.ExpiresAt == nil || p.ExpiresAt.After(now)
}
