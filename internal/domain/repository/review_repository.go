package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrReviewNotFound is returned when a review does not exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the subject.
	ErrDuplicateReview = errors.New("review already exists for this subject")
)

// ReviewAggregate summarizes the reviews of one subject.
type ReviewAggregate struct {
	Average      float64
	Total        int64
	Distribution entity.RatingDistribution
}

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrDuplicateReview when the
	// (user, subject) pair already exists.
	Create(ctx context.Context, review *entity.Review) error

	// Update modifies an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndSubject retrieves the user's review of a subject, if any.
	FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Review, error)

	// ListBySubject retrieves a subject's reviews newest first with the
	// total match count.
	ListBySubject(ctx context.Context, subject entity.SubjectRef, page, limit int) ([]*entity.Review, int64, error)

	// AggregateBySubject computes the average rating, total count, and
	// per-star distribution for a subject.
	AggregateBySubject(ctx context.Context, subject entity.SubjectRef) (*ReviewAggregate, error)
}
