package usecase

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// StoryUsecase defines the ephemeral story operations.
type StoryUsecase interface {
	// CreateStory publishes a story expiring at the end of the current
	// day, subject to the per-user daily quota.
	CreateStory(ctx context.Context, userID uuid.UUID, input *CreateStoryInput) (*entity.Story, error)

	// GetStory retrieves an unexpired story. Expired stories are reported
	// as not found even while the row still exists.
	GetStory(ctx context.Context, id uuid.UUID) (*StoryOutput, error)

	// ListActiveStories retrieves unexpired stories, optionally scoped to
	// a city, in tier order.
	ListActiveStories(ctx context.Context, cityID *uuid.UUID) ([]*StoryOutput, error)

	// ListOwnStories retrieves the caller's stories, optionally including
	// expired ones.
	ListOwnStories(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*StoryOutput, error)

	// GetStats retrieves the caller's own story counters, including
	// expired stories awaiting the sweep.
	GetStats(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) (*StoryStatsOutput, error)

	// DeleteStory removes the caller's own story permanently.
	DeleteStory(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) error

	// RecordView counts one view against an unexpired story. Counter
	// failures are logged and swallowed; the view itself never fails.
	RecordView(ctx context.Context, id uuid.UUID) error

	// RecordClick counts one click against an unexpired story.
	RecordClick(ctx context.Context, id uuid.UUID) error

	// SweepExpired hard-deletes stories expired at or before the cutoff,
	// returning the number of rows removed. Called by the scheduler.
	SweepExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// --- Input DTOs ---

// CreateStoryInput defines the data required to publish a story.
type CreateStoryInput struct {
	Type      string     `json:"type" validate:"required"`
	Title     string     `json:"title"`
	Image     string     `json:"image" validate:"required"`
	Link      string     `json:"link"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	ServiceID *uuid.UUID `json:"service_id,omitempty"`
}

// --- Output DTOs ---

// StoryOutput is a story with its derived click-through rate.
type StoryOutput struct {
	Story *entity.Story `json:"story"`
	CTR   float64       `json:"ctr"`
}

// StoryStatsOutput is the owner-facing counter summary for one story.
type StoryStatsOutput struct {
	Views     int64   `json:"views"`
	Clicks    int64   `json:"clicks"`
	CTR       float64 `json:"ctr"`
	IsExpired bool    `json:"is_expired"`
}
