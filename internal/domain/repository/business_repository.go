package repository

import (
	"context"
	"errors"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business does not exist.
var ErrBusinessNotFound = errors.New("business not found")

// ErrDuplicateBusiness is returned when a user who already owns a business tries to create another.
var ErrDuplicateBusiness = errors.New("user already has a business")

// BusinessFilter captures the query parameters of the public business listing.
// A nil pointer means the dimension is not filtered.
type BusinessFilter struct {
	CityID   *uuid.UUID
	Category string
	Verified *bool
	Plan     *entity.Plan
	Search   string // Case-insensitive substring matched against name OR description.
	Page     int
	Limit    int
}

// BusinessRepository defines the operations for business persistence.
//
// List applies the tiered visibility contract: city scope, ACTIVE account
// status, then ordering by subscription plan desc, verified desc, view count
// desc, with offset/limit pagination and a total count.
type BusinessRepository interface {
	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business.
	Update(ctx context.Context, business *entity.Business) error

	// Delete removes a business and cascades to its owned records.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindBySlug retrieves a business by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// FindByUserID retrieves the business owned by the given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error)

	// List retrieves businesses matching the filter under the tiered
	// visibility contract, returning the page and the total match count.
	List(ctx context.Context, filter BusinessFilter) ([]*entity.Business, int64, error)

	// SlugExists reports whether a slug is already taken.
	SlugExists(ctx context.Context, slug string) (bool, error)

	// IncrementViewCount atomically adds one to the view counter using a
	// storage-level increment, never a read-modify-write.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// UpdateSubscriptionState rewrites the denormalized subscription
	// snapshot carried by the business row.
	UpdateSubscriptionState(ctx context.Context, id uuid.UUID, plan entity.Plan, status entity.SubscriptionStatus, startDate, endDate *time.Time) error
}
