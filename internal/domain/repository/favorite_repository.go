package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrFavoriteNotFound is returned when a favorite does not exist.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the user already saved the subject.
	ErrDuplicateFavorite = errors.New("favorite already exists for this subject")
)

// FavoriteRepository defines the operations for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite. Returns ErrDuplicateFavorite when the
	// (user, subject) pair already exists.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes a favorite.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID retrieves a favorite by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error)

	// FindByUserAndSubject retrieves the user's favorite of a subject, if any.
	FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Favorite, error)

	// ListByUser retrieves a user's favorites newest first. subjectType
	// optionally narrows to "business", "product", or "service".
	ListByUser(ctx context.Context, userID uuid.UUID, subjectType string, page, limit int) ([]*entity.Favorite, int64, error)
}
