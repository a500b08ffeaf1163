package impl

import (
	"context"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteTestEnv struct {
	srv          *favoriteService
	favoriteRepo *mockFavoriteRepo
	businessRepo *mockBusinessRepo
	productRepo  *mockProductRepo
	serviceRepo  *mockServiceRepo
}

func newFavoriteServiceForTest(t *testing.T) *favoriteTestEnv {
	t.Helper()

	env := &favoriteTestEnv{
		favoriteRepo: &mockFavoriteRepo{},
		businessRepo: &mockBusinessRepo{},
		productRepo:  &mockProductRepo{},
		serviceRepo:  &mockServiceRepo{},
	}
	env.srv = NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: env.favoriteRepo,
		BusinessRepo: env.businessRepo,
		ProductRepo:  env.productRepo,
		ServiceRepo:  env.serviceRepo,
		Logger:       testLogger(),
	}).(*favoriteService)

	return env
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, UserID: uuid.New()}, nil)
		env.favoriteRepo.On("FindByUserAndSubject", mock.Anything, userID, mock.Anything).
			Return(nil, repository.ErrFavoriteNotFound)
		env.favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Favorite")).Return(nil)

		favorite, err := env.srv.AddFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		require.NoError(t, err)
		assert.Equal(t, userID, favorite.UserID)
		assert.Equal(t, &productID, favorite.ProductID)
	})

	t.Run("own subject is allowed", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, UserID: userID}, nil)
		env.favoriteRepo.On("FindByUserAndSubject", mock.Anything, userID, mock.Anything).
			Return(nil, repository.ErrFavoriteNotFound)
		env.favoriteRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Favorite")).Return(nil)

		_, err := env.srv.AddFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		assert.NoError(t, err)
	})

	t.Run("duplicate", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, UserID: uuid.New()}, nil)
		env.favoriteRepo.On("FindByUserAndSubject", mock.Anything, userID, mock.Anything).
			Return(&entity.Favorite{ID: uuid.New()}, nil)

		_, err := env.srv.AddFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
		env.favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing subject", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.productRepo.On("FindByID", mock.Anything, productID).
			Return(nil, repository.ErrProductNotFound)

		_, err := env.srv.AddFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("no subject set", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)

		_, err := env.srv.AddFavorite(context.Background(), userID, &usecase.AddFavoriteInput{})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSubject)
	})
}

func TestFavoriteService_RemoveFavorite(t *testing.T) {
	userID := uuid.New()
	favoriteID := uuid.New()

	t.Run("owner removes", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.favoriteRepo.On("FindByID", mock.Anything, favoriteID).
			Return(&entity.Favorite{ID: favoriteID, UserID: userID}, nil)
		env.favoriteRepo.On("Delete", mock.Anything, favoriteID).Return(nil)

		assert.NoError(t, env.srv.RemoveFavorite(context.Background(), userID, favoriteID))
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.favoriteRepo.On("FindByID", mock.Anything, favoriteID).
			Return(&entity.Favorite{ID: favoriteID, UserID: uuid.New()}, nil)

		err := env.srv.RemoveFavorite(context.Background(), userID, favoriteID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		env.favoriteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFavoriteService_CheckFavorite(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	t.Run("bookmarked subject", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		favorite := &entity.Favorite{ID: uuid.New(), UserID: userID, ProductID: &productID}
		env.favoriteRepo.On("FindByUserAndSubject", mock.Anything, userID, mock.Anything).
			Return(favorite, nil)

		output, err := env.srv.CheckFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		require.NoError(t, err)
		assert.True(t, output.Favorited)
		assert.Equal(t, &favorite.ID, output.FavoriteID)
	})

	t.Run("not bookmarked", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)
		env.favoriteRepo.On("FindByUserAndSubject", mock.Anything, userID, mock.Anything).
			Return(nil, repository.ErrFavoriteNotFound)

		output, err := env.srv.CheckFavorite(context.Background(), userID, &usecase.AddFavoriteInput{ProductID: &productID})
		require.NoError(t, err)
		assert.False(t, output.Favorited)
		assert.Nil(t, output.FavoriteID)
	})

	t.Run("no subject set", func(t *testing.T) {
		env := newFavoriteServiceForTest(t)

		_, err := env.srv.CheckFavorite(context.Background(), userID, &usecase.AddFavoriteInput{})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSubject)
	})
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	userID := uuid.New()
	env := newFavoriteServiceForTest(t)

	env.favoriteRepo.On("ListByUser", mock.Anything, userID, "product", 1, defaultPageLimit).
		Return([]*entity.Favorite{{ID: uuid.New()}}, int64(1), nil)

	output, err := env.srv.ListFavorites(context.Background(), userID, "product", 0, 0)
	require.NoError(t, err)
	assert.Len(t, output.Items, 1)
	assert.Equal(t, int64(1), output.Total)

	_, err = env.srv.ListFavorites(context.Background(), userID, "story", 1, 10)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
