package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left by a user on exactly one subject: a business, a
// product or a service. A user may review a given subject once and may never
// review their own subjects.
type Review struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	ProductID  *uuid.UUID
	ServiceID  *uuid.UUID
	Rating     int // 1..5 inclusive.
	Comment    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RatingDistribution is the per-star review count for a subject, keyed 1..5.
type RatingDistribution map[int]int64
