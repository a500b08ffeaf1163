package impl

import (
	"context"
	"testing"
	"time"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchServiceForTest(t *testing.T) (*searchService, *mockBusinessRepo, *mockProductRepo, *mockServiceRepo) {
	t.Helper()

	businessRepo := &mockBusinessRepo{}
	productRepo := &mockProductRepo{}
	serviceRepo := &mockServiceRepo{}
	srv := NewSearchService(SearchServiceParams{
		BusinessRepo: businessRepo,
		ProductRepo:  productRepo,
		ServiceRepo:  serviceRepo,
		Logger:       testLogger(),
	}).(*searchService)
	srv.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	return srv, businessRepo, productRepo, serviceRepo
}

func TestSearchService_Search(t *testing.T) {
	t.Run("fans out to all three listings", func(t *testing.T) {
		srv, businessRepo, productRepo, serviceRepo := newSearchServiceForTest(t)
		cityID := uuid.New()

		businessRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.BusinessFilter) bool {
			return f.Search == "pan" && f.Limit == defaultSearchLimit && f.CityID != nil && *f.CityID == cityID
		})).Return([]*entity.Business{{ID: uuid.New(), Name: "Panadería"}}, int64(1), nil)
		productRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return f.Search == "pan" && f.LiveOnly && !f.Now.IsZero()
		})).Return([]*entity.Product{{ID: uuid.New()}, {ID: uuid.New()}}, int64(2), nil)
		serviceRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ServiceFilter) bool {
			return f.Search == "pan" && f.Status != nil && *f.Status == entity.ListingStatusActive
		})).Return(nil, int64(0), nil)

		output, err := srv.Search(context.Background(), &usecase.SearchInput{Query: "  pan  ", CityID: &cityID})
		require.NoError(t, err)
		assert.Len(t, output.Businesses, 1)
		assert.Len(t, output.Products, 2)
		assert.Empty(t, output.Services)
	})

	t.Run("query shorter than two characters", func(t *testing.T) {
		srv, businessRepo, _, _ := newSearchServiceForTest(t)

		// Length is measured in runes, so one accented character is
		// still a single-character query.
		for _, query := range []string{"", "p", "   a   ", "ñ"} {
			_, err := srv.Search(context.Background(), &usecase.SearchInput{Query: query})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		}
		businessRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("limit is capped", func(t *testing.T) {
		srv, businessRepo, productRepo, serviceRepo := newSearchServiceForTest(t)

		match := func(limit int) bool { return limit == maxPageLimit }
		businessRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.BusinessFilter) bool {
			return match(f.Limit)
		})).Return(nil, int64(0), nil)
		productRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ProductFilter) bool {
			return match(f.Limit)
		})).Return(nil, int64(0), nil)
		serviceRepo.On("List", mock.Anything, mock.MatchedBy(func(f repository.ServiceFilter) bool {
			return match(f.Limit)
		})).Return(nil, int64(0), nil)

		_, err := srv.Search(context.Background(), &usecase.SearchInput{Query: "feria", Limit: 500})
		require.NoError(t, err)
	})
}
