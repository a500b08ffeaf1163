package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a bookmark from a user to exactly one subject. Unique per
// (user, subject) pair.
type Favorite struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	BusinessID *uuid.UUID
	ProductID  *uuid.UUID
	ServiceID  *uuid.UUID
	CreatedAt  time.Time
}
