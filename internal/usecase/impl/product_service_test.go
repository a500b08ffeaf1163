package impl

import (
	"context"
	"testing"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest(t *testing.T, now time.Time) (*productService, *mockProductRepo, *mockUserRepo) {
	t.Helper()

	productRepo := &mockProductRepo{}
	userRepo := &mockUserRepo{}
	srv := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      testLogger(),
	}).(*productService)
	srv.now = func() time.Time { return now }

	return srv, productRepo, userRepo
}

func TestProductService_CreateProduct(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	businessID := uuid.New()
	vendor := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleStreetVendor,
		CityID:   uuid.New(),
		Business: &entity.Business{ID: businessID},
	}

	t.Run("inherits city and business from the publisher", func(t *testing.T) {
		srv, productRepo, userRepo := newProductServiceForTest(t, now)
		userRepo.On("FindByID", mock.Anything, vendor.ID).Return(vendor, nil)
		productRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Product")).Return(nil)

		product, err := srv.CreateProduct(context.Background(), vendor.ID, &usecase.CreateProductInput{
			Name:  "Alfajores artesanales",
			Price: 1200,
			Stock: 24,
		})
		require.NoError(t, err)
		assert.Equal(t, vendor.CityID, product.CityID)
		require.NotNil(t, product.BusinessID)
		assert.Equal(t, businessID, *product.BusinessID)
		assert.Equal(t, entity.ListingStatusActive, product.Status)
	})

	t.Run("customers cannot publish", func(t *testing.T) {
		srv, productRepo, userRepo := newProductServiceForTest(t, now)
		customer := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		userRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)

		_, err := srv.CreateProduct(context.Background(), customer.ID, &usecase.CreateProductInput{Name: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_GetProduct(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	productID := uuid.New()

	t.Run("live product records a view", func(t *testing.T) {
		srv, productRepo, _ := newProductServiceForTest(t, now)
		productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, Status: entity.ListingStatusActive}, nil)
		productRepo.On("IncrementViewCount", mock.Anything, productID).Return(nil)

		product, err := srv.GetProduct(context.Background(), productID)
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		productRepo.AssertExpectations(t)
	})

	t.Run("expired product reads as missing", func(t *testing.T) {
		srv, productRepo, _ := newProductServiceForTest(t, now)
		expiresAt := now.Add(-time.Hour)
		productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, Status: entity.ListingStatusActive, ExpiresAt: &expiresAt}, nil)

		_, err := srv.GetProduct(context.Background(), productID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		productRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	})

	t.Run("inactive product reads as missing", func(t *testing.T) {
		srv, productRepo, _ := newProductServiceForTest(t, now)
		productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, Status: entity.ListingStatusInactive}, nil)

		_, err := srv.GetProduct(context.Background(), productID)
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	productID := uuid.New()

	t.Run("owner deactivates instead of erasing", func(t *testing.T) {
		srv, productRepo, _ := newProductServiceForTest(t, now)
		productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, UserID: ownerID, Status: entity.ListingStatusActive}, nil)
		productRepo.On("SetStatus", mock.Anything, productID, entity.ListingStatusInactive).Return(nil)

		require.NoError(t, srv.DeleteProduct(context.Background(), ownerID, productID))
		productRepo.AssertExpectations(t)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		srv, productRepo, _ := newProductServiceForTest(t, now)
		productRepo.On("FindByID", mock.Anything, productID).
			Return(&entity.Product{ID: productID, UserID: ownerID}, nil)

		err := srv.DeleteProduct(context.Background(), uuid.New(), productID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		productRepo.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
