package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// CityUsecase defines the read operations of the city catalog.
type CityUsecase interface {
	// ListCities retrieves all active cities, optionally filtered by a
	// name or state substring.
	ListCities(ctx context.Context, search string) ([]*entity.City, error)

	// GetCity retrieves one active city.
	GetCity(ctx context.Context, id uuid.UUID) (*entity.City, error)
}
