package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	subjects     subjectResolver
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	ServiceRepo  repository.ServiceRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		subjects: subjectResolver{
			businessRepo: params.BusinessRepo,
			productRepo:  params.ProductRepo,
			serviceRepo:  params.ServiceRepo,
		},
		logger: params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite bookmarks exactly one subject for the caller.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.Favorite, error) {
	subject := entity.SubjectRef{
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
	}
	if _, err := srv.subjects.ownerOf(ctx, subject); err != nil {
		return nil, err
	}

	if _, err := srv.favoriteRepo.FindByUserAndSubject(ctx, userID, subject); err == nil {
		return nil, domainerrors.ErrFavoriteAlreadyExists
	} else if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, errors.Wrap(err, "failed to check existing favorite")
	}

	favorite := &entity.Favorite{
		UserID:     userID,
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, domainerrors.ErrFavoriteAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create favorite")
	}

	srv.log(ctx).Info("Favorite added", slog.Any("favoriteID", favorite.ID), slog.Any("userID", userID))

	return favorite, nil
}

// RemoveFavorite deletes the caller's own favorite.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, favoriteID uuid.UUID) error {
	favorite, err := srv.favoriteRepo.FindByID(ctx, favoriteID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to find favorite")
	}
	if favorite.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.favoriteRepo.Delete(ctx, favoriteID); err != nil {
		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// CheckFavorite reports whether the caller has bookmarked the subject.
func (srv *favoriteService) CheckFavorite(ctx context.Context, userID uuid.UUID, input *usecase.AddFavoriteInput) (*usecase.FavoriteCheckOutput, error) {
	subject := entity.SubjectRef{
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
	}
	if !subject.Valid() {
		return nil, domainerrors.ErrInvalidSubject
	}

	favorite, err := srv.favoriteRepo.FindByUserAndSubject(ctx, userID, subject)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return &usecase.FavoriteCheckOutput{}, nil
		}

		return nil, errors.Wrap(err, "failed to check favorite")
	}

	return &usecase.FavoriteCheckOutput{Favorited: true, FavoriteID: &favorite.ID}, nil
}

// ListFavorites retrieves the caller's favorites, optionally narrowed to one
// subject type.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID uuid.UUID, subjectType string, page, limit int) (*usecase.FavoriteListOutput, error) {
	switch subjectType {
	case "", "business", "product", "service":
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown subject type: " + subjectType)
	}

	page, limit = normalizePage(page, limit)
	items, total, err := srv.favoriteRepo.ListByUser(ctx, userID, subjectType, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return &usecase.FavoriteListOutput{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}
