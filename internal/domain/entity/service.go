package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a service offering (repairs, classes, delivery...) published by
// a user, optionally through their business. Unlike products, services never
// expire on their own; only the soft-delete status controls visibility.
type Service struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BusinessID   *uuid.UUID
	CityID       uuid.UUID
	Name         string
	Description  string
	Category     string
	PriceType    string // e.g. "FIXED", "HOURLY", "QUOTE".
	Price        float64
	PriceUnit    string
	Images       []string
	CoverageArea string
	Status       ListingStatus
	ViewCount    int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
