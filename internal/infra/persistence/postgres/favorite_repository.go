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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFavorite
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidSubject.WrapMessage("favorite subject does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes a favorite.
func (repo *favoriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// FindByID retrieves a favorite by its unique ID.
func (repo *favoriteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by id")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByUserAndSubject retrieves the user's favorite of a subject, if any.
func (repo *favoriteRepository) FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	query := applySubjectScope(repo.db.WithContext(ctx), subject).
		Where("user_id = ?", userID)

	if err := query.First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by user and subject")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// ListByUser retrieves a user's favorites newest first, optionally narrowed
// to one subject type.
func (repo *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID, subjectType string, page, limit int) ([]*entity.Favorite, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("user_id = ?", userID)

	switch subjectType {
	case "business":
		query = query.Where("business_id IS NOT NULL")
	case "product":
		query = query.Where("product_id IS NOT NULL")
	case "service":
		query = query.Where("service_id IS NOT NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count favorites")
	}

	var favoriteModels []*model.FavoriteModel
	if err := query.
		Order("created_at DESC").
		Offset(pageOffset(page, limit)).
		Limit(limit).
		Find(&favoriteModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, total, nil
}

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
		CreatedAt:  data.CreatedAt,
	}
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:         data.ID,
		UserID:     data.UserID,
		BusinessID: data.BusinessID,
		ProductID:  data.ProductID,
		ServiceID:  data.ServiceID,
	}
}
