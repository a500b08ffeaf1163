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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidSubject.WrapMessage("review subject does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Update modifies an existing review.
func (repo *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Save(reviewM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update review")
	}

	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// Delete removes a review.
func (repo *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// FindByID retrieves a review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// FindByUserAndSubject retrieves the user's review of a subject, if any.
func (repo *reviewRepository) FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Review, error) {
	var reviewM model.ReviewModel

	query := applySubjectScope(repo.db.WithContext(ctx), subject).
		Where("user_id = ?", userID)

	if err := query.First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by user and subject")
	}

	return toReviewDomain(&reviewM), nil
}

// ListBySubject retrieves a subject's reviews newest first with the total count.
func (repo *reviewRepository) ListBySubject(ctx context.Context, subject entity.SubjectRef, page, limit int) ([]*entity.Review, int64, error) {
	query := applySubjectScope(repo.db.WithContext(ctx).Model(&model.ReviewModel{}), subject)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews by subject")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// AggregateBySubject computes the rating summary for a subject.
func (repo *reviewRepository) AggregateBySubject(ctx context.Context, subject entity.SubjectRef) (*repository.ReviewAggregate, error) {
	var rows []struct {
		Rating int
		Count  int64
	}

	if err := applySubjectScope(repo.db.WithContext(ctx).Model(&model.ReviewModel{}), subject).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews")
	}

	agg := &repository.ReviewAggregate{
		Distribution: entity.RatingDistribution{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}

	var ratingSum int64
	for _, row := range rows {
		agg.Distribution[row.Rating] = row.Count
		agg.Total += row.Count
		ratingSum += int64(row.Rating) * row.Count
	}
	if agg.Total > 0 {
		agg.Average = float64(ratingSum) / float64(agg.Total)
	}

	return agg, nil
}

// applySubjectScope narrows a query to the one subject column set in the ref.
func applySubjectScope(query *gorm.DB, subject entity.SubjectRef) *gorm.DB {
	switch {
	case subject.BusinessID != nil:
		return query.Where("business_id = ?", *subject.BusinessID)
	case subject.ProductID != nil:
		return query.Where("product_id = ?", *subject.ProductID)
	case subject.ServiceID != nil:
		return query.Where("service_id = ?", *subject.ServiceID)
	default:
		// An empty ref matches nothing. Callers validate before reaching here.
		return query.Where("1 = 0")
	}
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
		Rating:     data.Rating,
		Comment:    data.Comment,
	}
}
