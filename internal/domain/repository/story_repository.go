package repository

import (
	"context"
	"errors"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStoryNotFound is returned when a story does not exist.
var ErrStoryNotFound = errors.New("story not found")

// StoryRepository defines the operations for story persistence.
//
// Expiry is enforced at query time: readers filter on expires_at while the
// scheduler deletes stale rows in batches after the fact.
type StoryRepository interface {
	// Create persists a new story.
	Create(ctx context.Context, story *entity.Story) error

	// FindByID retrieves a story by its unique ID regardless of expiry.
	// Callers decide how to treat expired rows.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)

	// ListActive retrieves unexpired stories, optionally scoped to a city,
	// ordered by the owner's subscription plan desc and then created_at desc.
	ListActive(ctx context.Context, cityID *uuid.UUID, now time.Time) ([]*entity.Story, error)

	// ListByUser retrieves a user's own stories newest first. Expired rows
	// are included only when includeExpired is set.
	ListByUser(ctx context.Context, userID uuid.UUID, includeExpired bool, now time.Time) ([]*entity.Story, error)

	// CountCreatedBetween counts a user's stories created in [from, to],
	// used for the daily quota.
	CountCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)

	// Delete removes a story permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementViewCount atomically adds one to the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// IncrementClickCount atomically adds one to the click counter.
	IncrementClickCount(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredBefore removes stories whose expires_at is at or before
	// the cutoff, returning the number of rows deleted.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
