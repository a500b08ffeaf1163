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

// storyRepository implements the repository.StoryRepository interface.
type storyRepository struct {
	db *gorm.DB
}

// NewStoryRepository is the constructor for storyRepository.
func NewStoryRepository(db *gorm.DB) repository.StoryRepository {
	return &storyRepository{
		db: db,
	}
}

// Create persists a new story.
func (repo *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	storyM := fromStoryDomain(story)

	if err := repo.db.WithContext(ctx).Create(storyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBusinessNotFound.WrapMessage("invalid business or city reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create story")
	}

	story.ID = storyM.ID
	story.CreatedAt = storyM.CreatedAt

	return nil
}

// FindByID retrieves a story by its unique ID regardless of expiry.
func (repo *storyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	var storyM model.StoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story by id")
	}

	return toStoryDomain(&storyM), nil
}

// ListActive retrieves unexpired stories ordered by owner tier and recency.
func (repo *storyRepository) ListActive(ctx context.Context, cityID *uuid.UUID, now time.Time) ([]*entity.Story, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Joins("LEFT JOIN businesses ON businesses.id = stories.business_id").
		Where("stories.expires_at > ?", now)

	if cityID != nil {
		query = query.Where("stories.city_id = ?", *cityID)
	}

	var storyModels []*model.StoryModel
	if err := query.
		Order(listingTierOrder).
		Order("stories.created_at DESC").
		Find(&storyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active stories")
	}

	return toStoryDomainSlice(storyModels), nil
}

// ListByUser retrieves a user's own stories newest first.
func (repo *storyRepository) ListByUser(ctx context.Context, userID uuid.UUID, includeExpired bool, now time.Time) ([]*entity.Story, error) {
	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if !includeExpired {
		query = query.Where("expires_at > ?", now)
	}

	var storyModels []*model.StoryModel
	if err := query.Find(&storyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stories by user")
	}

	return toStoryDomainSlice(storyModels), nil
}

// CountCreatedBetween counts a user's stories created in [from, to].
func (repo *storyRepository) CountCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stories")
	}

	return count, nil
}

// Delete removes a story permanently.
func (repo *storyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete story")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoryNotFound
	}

	return nil
}

// IncrementViewCount atomically adds one to the view counter.
func (repo *storyRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment story view count")
	}

	return nil
}

// IncrementClickCount atomically adds one to the click counter.
func (repo *storyRepository) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.StoryModel{}).
		Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + 1")).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to increment story click count")
	}

	return nil
}

// DeleteExpiredBefore removes stories whose expiry is at or before the cutoff.
func (repo *storyRepository) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", cutoff).
		Delete(&model.StoryModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired stories")
	}

	return result.RowsAffected, nil
}

func toStoryDomainSlice(storyModels []*model.StoryModel) []*entity.Story {
	stories := make([]*entity.Story, 0, len(storyModels))
	for _, storyM := range storyModels {
		stories = append(stories, toStoryDomain(storyM))
	}

	return stories
}

// toStoryDomain converts a GORM StoryModel to a domain Story entity.
func toStoryDomain(data *model.StoryModel) *entity.Story {
	if data == nil {
		return nil
	}

	return &entity.Story{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		CityID:     data.CityID,
		Type:       data.Type,
		Title:      data.Title,
		Image:      data.Image,
		Link:       data.Link,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
		ViewCount:  data.ViewCount,
		ClickCount: data.ClickCount,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromStoryDomain converts a domain Story entity to a GORM StoryModel.
func fromStoryDomain(data *entity.Story) *model.StoryModel {
	if data == nil {
		return nil
	}

	return &model.StoryModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		CityID:     data.CityID,
		Type:       data.Type,
		Title:      data.Title,
		Image:      data.Image,
		Link:       data.Link,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
		ViewCount:  data.ViewCount,
		ClickCount: data.ClickCount,
		ExpiresAt:  data.ExpiresAt,
	}
}
