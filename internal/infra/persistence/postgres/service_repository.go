package postgres

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// serviceRepository implements the repository.ServiceRepository interface.
type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

// Create persists a new service.
func (repo *serviceRepository) Create(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business or city reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// Update modifies an existing service.
func (repo *serviceRepository) Update(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Save(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update service")
	}

	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindByID retrieves a service by its unique ID.
func (repo *serviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by id")
	}

	return toServiceDomain(&serviceM), nil
}

// List retrieves services matching the filter ordered by owner tier and
// recency.
func (repo *serviceRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Joins("LEFT JOIN businesses ON businesses.id = services.business_id")

	if filter.Status != nil {
		query = query.Where("services.status = ?", string(*filter.Status))
	}
	if filter.CityID != nil {
		query = query.Where("services.city_id = ?", *filter.CityID)
	}
	if filter.Category != "" {
		query = query.Where("services.category = ?", filter.Category)
	}
	if filter.PriceType != "" {
		query = query.Where("services.price_type = ?", filter.PriceType)
	}
	if filter.MinPrice != nil {
		query = query.Where("services.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("services.price <= ?", *filter.MaxPrice)
	}
	if filter.UserID != nil {
		query = query.Where("services.user_id = ?", *filter.UserID)
	}
	if filter.BusinessID != nil {
		query = query.Where("services.business_id = ?", *filter.BusinessID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("services.name ILIKE ? OR services.description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count services")
	}

	var serviceModels []*model.ServiceModel
	if err := query.
		Order(listingTierOrder).
		Order("services.created_at DESC").
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&serviceModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, total, nil
}

// SetStatus flips the soft-delete flag.
func (repo *serviceRepository) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// IncrementViewCount atomically adds one to the view counter.
func (repo *serviceRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment service view count")
	}

	return nil
}

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessID:   data.BusinessID,
		CityID:       data.CityID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		PriceType:    data.PriceType,
		Price:        data.Price,
		PriceUnit:    data.PriceUnit,
		Images:       data.Images,
		CoverageArea: data.CoverageArea,
		Status:       entity.ListingStatus(data.Status),
		ViewCount:    data.ViewCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BusinessID:   data.BusinessID,
		CityID:       data.CityID,
		Name:         data.Name,
		Description:  data.Description,
		Category:     data.Category,
		PriceType:    data.PriceType,
		Price:        data.Price,
		PriceUnit:    data.PriceUnit,
		Images:       data.Images,
		CoverageArea: data.CoverageArea,
		Status:       string(data.Status),
		ViewCount:    data.ViewCount,
	}
}
