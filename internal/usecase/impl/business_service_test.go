package impl

import (
	"context"
	"testing"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBusinessServiceForTest(t *testing.T) (*businessService, *mockBusinessRepo) {
	t.Helper()

	businessRepo := &mockBusinessRepo{}
	srv := NewBusinessService(BusinessServiceParams{
		BusinessRepo: businessRepo,
		CityRepo:     &mockCityRepo{},
		ReviewRepo:   &mockReviewRepo{},
		Logger:       testLogger(),
	}).(*businessService)

	return srv, businessRepo
}

func TestBusinessService_DeleteBusiness(t *testing.T) {
	ownerID := uuid.New()
	business := &entity.Business{ID: uuid.New(), UserID: ownerID}

	t.Run("owner deletes their business", func(t *testing.T) {
		srv, businessRepo := newBusinessServiceForTest(t)
		businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)
		businessRepo.On("Delete", mock.Anything, business.ID).Return(nil)

		err := srv.DeleteBusiness(context.Background(), ownerID, business.ID)
		require.NoError(t, err)
		businessRepo.AssertExpectations(t)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		srv, businessRepo := newBusinessServiceForTest(t)
		businessRepo.On("FindByID", mock.Anything, business.ID).Return(business, nil)

		err := srv.DeleteBusiness(context.Background(), uuid.New(), business.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		businessRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown business reads as not found", func(t *testing.T) {
		srv, businessRepo := newBusinessServiceForTest(t)
		missing := uuid.New()
		businessRepo.On("FindByID", mock.Anything, missing).Return(nil, repository.ErrBusinessNotFound)

		err := srv.DeleteBusiness(context.Background(), ownerID, missing)
		assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	})
}
