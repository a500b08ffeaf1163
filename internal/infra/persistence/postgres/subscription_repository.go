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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// Update modifies an existing subscription.
func (repo *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Save(subscriptionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update subscription")
	}

	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by id")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindActiveByBusiness retrieves the business's running subscription, if any.
func (repo *subscriptionRepository) FindActiveByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND status IN ?", businessID, []string{
			entity.SubscriptionActive.String(),
			entity.SubscriptionPaymentPending.String(),
		}).
		Order("created_at DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// ListByBusiness retrieves all of a business's subscriptions newest first.
func (repo *subscriptionRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions by business")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// ListActiveDue retrieves ACTIVE subscriptions whose end date has passed.
func (repo *subscriptionRepository) ListActiveDue(ctx context.Context, now time.Time) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("status = ? AND end_date <= ?", entity.SubscriptionActive.String(), now).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list due subscriptions")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// UpdateStatus sets the subscription's status.
func (repo *subscriptionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// MarkCancelled sets the status to CANCELLED and turns auto renew off.
func (repo *subscriptionRepository) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     entity.SubscriptionCancelled.String(),
			"auto_renew": false,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to cancel subscription")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Plan:          entity.Plan(data.Plan),
		Status:        entity.SubscriptionStatus(data.Status),
		Amount:        data.Amount,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		AutoRenew:     data.AutoRenew,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Plan:          data.Plan.String(),
		Status:        data.Status.String(),
		Amount:        data.Amount,
		PaymentMethod: string(data.PaymentMethod),
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		AutoRenew:     data.AutoRenew,
	}
}
