package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the bookmark operations.
type FavoriteUsecase interface {
	// AddFavorite bookmarks exactly one subject for the caller.
	AddFavorite(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) (*entity.Favorite, error)

	// RemoveFavorite deletes the caller's own favorite.
	RemoveFavorite(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error

	// ListFavorites retrieves the caller's favorites, optionally narrowed
	// to one subject type ("business", "product" or "service").
	ListFavorites(ctx context.Context, userID uuid.UUID, subjectType string, page, limit int) (*FavoriteListOutput, error)

	// CheckFavorite reports whether the caller has bookmarked the subject.
	CheckFavorite(ctx context.Context, userID uuid.UUID, input *AddFavoriteInput) (*FavoriteCheckOutput, error)
}

// --- Input DTOs ---

// AddFavoriteInput defines the bookmark target. Exactly one of the subject
// IDs must be set.
type AddFavoriteInput struct {
	BusinessID *uuid.UUID `json:"business_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	ServiceID  *uuid.UUID `json:"service_id,omitempty"`
}

// --- Output DTOs ---

// FavoriteCheckOutput reports whether a subject is bookmarked and, if so,
// under which favorite.
type FavoriteCheckOutput struct {
	Favorited  bool       `json:"favorited"`
	FavoriteID *uuid.UUID `json:"favorite_id,omitempty"`
}

// FavoriteListOutput is one page of the caller's favorites.
type FavoriteListOutput struct {
	Items []*entity.Favorite `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
