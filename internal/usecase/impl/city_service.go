package impl

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cityService implements the CityUsecase interface.
type cityService struct {
	cityRepo repository.CityRepository
}

// CityServiceParams holds dependencies for CityService, injected by Fx.
type CityServiceParams struct {
	fx.In

	CityRepo repository.CityRepository
}

// NewCityService is the constructor for cityService.
func NewCityService(params CityServiceParams) usecase.CityUsecase {
	return &cityService{
		cityRepo: params.CityRepo,
	}
}

// ListCities retrieves all active cities.
func (srv *cityService) ListCities(ctx context.Context, search string) ([]*entity.City, error) {
	cities, err := srv.cityRepo.ListActive(ctx, search)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// GetCity retrieves one active city.
func (srv *cityService) GetCity(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	city, err := srv.cityRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return city, nil
}
