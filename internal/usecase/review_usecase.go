package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
)

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	// CreateReview leaves a rating on exactly one subject. The caller may
	// not review the same subject twice or review their own content.
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// UpdateReview modifies the caller's own review.
	UpdateReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// DeleteReview removes the caller's own review.
	DeleteReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error

	// ListReviews retrieves a subject's reviews with the rating summary.
	ListReviews(ctx context.Context, input *ListReviewsInput) (*ReviewListOutput, error)
}

// --- Input DTOs ---

// CreateReviewInput defines the data required to leave a review.
// Exactly one of the subject IDs must be set.
type CreateReviewInput struct {
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
	Rating     int        `json:"rating" validate:"required,min=1,max=5"`
	Comment    string     `json:"comment"`
}

// UpdateReviewInput defines the partial review update payload.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// ListReviewsInput defines the review listing query for one subject.
type ListReviewsInput struct {
	BusinessID *uuid.UUID
	ProductID  *uuid.UUID
	ServiceID  *uuid.UUID
	Page       int
	Limit      int
}

// --- Output DTOs ---

// ReviewListOutput is one page of a subject's reviews plus the summary.
type ReviewListOutput struct {
	Items     []*entity.Review            `json:"items"`
	Total     int64                       `json:"total"`
	Page      int                         `json:"page"`
	Limit     int                         `json:"limit"`
	Aggregate *repository.ReviewAggregate `json:"aggregate"`
}
