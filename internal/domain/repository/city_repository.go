package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCityNotFound is returned when a city does not exist or is inactive.
var ErrCityNotFound = errors.New("city not found")

// CityRepository defines read operations for the city catalog. Cities are
// seeded by operations; the API never mutates them.
type CityRepository interface {
	// FindByID retrieves a single city by ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	// FindActiveByID retrieves a city only if it is active.
	FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.City, error)

	// ListActive retrieves all active cities, optionally filtered by a
	// case-insensitive substring match on name or state, ordered by name.
	ListActive(ctx context.Context, search string) ([]*entity.City, error)
}
