package postgres

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
	}
}

// FindByID retrieves a city regardless of its active flag.
func (repo *cityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city by id")
	}

	return toCityDomain(&cityM), nil
}

// FindActiveByID retrieves an active city by its ID.
func (repo *cityRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	var cityM model.CityModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&cityM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find active city by id")
	}

	return toCityDomain(&cityM), nil
}

// ListActive retrieves all active cities ordered by name, optionally
// filtered by a case-insensitive substring on name or state.
func (repo *cityRepository) ListActive(ctx context.Context, search string) ([]*entity.City, error) {
	var cityModels []*model.CityModel

	query := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC")
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR state ILIKE ?", pattern, pattern)
	}

	if err := query.Find(&cityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

// toCityDomain converts a GORM CityModel to a domain City entity.
func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:        data.ID,
		Name:      data.Name,
		State:     data.State,
		Country:   data.Country,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Timezone:  data.Timezone,
		Active:    data.Active,
	}
}
