package postgres

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// businessTierOrder is the listing order of the tiered visibility contract:
// paid plans first, verified profiles next, popularity last.
const businessTierOrder = "subscription_plan DESC, verified DESC, view_count DESC"

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a new business.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCityNotFound.WrapMessage("invalid city reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Update modifies an existing business.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Save(businessM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusiness
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update business")
	}

	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// Delete removes a business. Dependent rows cascade at the database level.
func (repo *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BusinessModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindBySlug retrieves a business by its unique slug.
func (repo *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

// FindByUserID retrieves the business owned by the given user.
func (repo *businessRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *businessRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where(cond, arg).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// List retrieves businesses under the tiered visibility contract.
func (repo *businessRepository) List(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("account_status = ?", string(entity.AccountStatusActive))

	if filter.CityID != nil {
		query = query.Where("city_id = ?", *filter.CityID)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Verified != nil {
		query = query.Where("verified = ?", *filter.Verified)
	}
	if filter.Plan != nil {
		query = query.Where("subscription_plan = ?", filter.Plan.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count businesses")
	}

	var businessModels []*model.BusinessModel
	if err := query.
		Order(businessTierOrder).
		Offset(pageOffset(filter.Page, filter.Limit)).
		Limit(filter.Limit).
		Find(&businessModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, total, nil
}

// SlugExists reports whether a slug is already taken.
func (repo *businessRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check slug existence")
	}

	return count > 0, nil
}

// IncrementViewCount atomically adds one to the view counter.
func (repo *businessRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment business view count")
	}

	return nil
}

// UpdateSubscriptionState rewrites the denormalized subscription snapshot.
func (repo *businessRepository) UpdateSubscriptionState(ctx context.Context, id uuid.UUID, plan entity.Plan, status entity.SubscriptionStatus, startDate, endDate *time.Time) error {
	updates := map[string]any{
		"subscription_plan":       plan.String(),
		"subscription_status":     status.String(),
		"subscription_start_date": startDate,
		"subscription_end_date":   endDate,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business subscription state")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// pageOffset converts 1-based page numbers to a row offset.
func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}

	return (page - 1) * limit
}

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:                    data.ID,
		UserID:                data.UserID,
		Slug:                  data.Slug,
		Name:                  data.Name,
		Description:           data.Description,
		Category:              data.Category,
		Logo:                  data.Logo,
		CoverImage:            data.CoverImage,
		Phone:                 data.Phone,
		WhatsApp:              data.WhatsApp,
		Email:                 data.Email,
		Website:               data.Website,
		Address:               data.Address,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		SubscriptionPlan:      entity.Plan(data.SubscriptionPlan),
		SubscriptionStatus:    entity.SubscriptionStatus(data.SubscriptionStatus),
		SubscriptionStartDate: data.SubscriptionStartDate,
		SubscriptionEndDate:   data.SubscriptionEndDate,
		Verified:              data.Verified,
		ViewCount:             data.ViewCount,
		AccountStatus:         entity.AccountStatus(data.AccountStatus),
		CityID:                data.CityID,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:                    data.ID,
		UserID:                data.UserID,
		Slug:                  data.Slug,
		Name:                  data.Name,
		Description:           data.Description,
		Category:              data.Category,
		Logo:                  data.Logo,
		CoverImage:            data.CoverImage,
		Phone:                 data.Phone,
		WhatsApp:              data.WhatsApp,
		Email:                 data.Email,
		Website:               data.Website,
		Address:               data.Address,
		Latitude:              data.Latitude,
		Longitude:             data.Longitude,
		SubscriptionPlan:      data.SubscriptionPlan.String(),
		SubscriptionStatus:    data.SubscriptionStatus.String(),
		SubscriptionStartDate: data.SubscriptionStartDate,
		SubscriptionEndDate:   data.SubscriptionEndDate,
		Verified:              data.Verified,
		ViewCount:             data.ViewCount,
		AccountStatus:         string(data.AccountStatus),
		CityID:                data.CityID,
	}
}
