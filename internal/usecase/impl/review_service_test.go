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

type reviewTestEnv struct {
	srv          *reviewService
	reviewRepo   *mockReviewRepo
	businessRepo *mockBusinessRepo
	productRepo  *mockProductRepo
	serviceRepo  *mockServiceRepo
}

func newReviewServiceForTest(t *testing.T) *reviewTestEnv {
	t.Helper()

	env := &reviewTestEnv{
		reviewRepo:   &mockReviewRepo{},
		businessRepo: &mockBusinessRepo{},
		productRepo:  &mockProductRepo{},
		serviceRepo:  &mockServiceRepo{},
	}
	env.srv = NewReviewService(ReviewServiceParams{
		ReviewRepo:   env.reviewRepo,
		BusinessRepo: env.businessRepo,
		ProductRepo:  env.productRepo,
		ServiceRepo:  env.serviceRepo,
		Logger:       testLogger(),
	}).(*reviewService)

	return env
}

func TestReviewService_CreateReview(t *testing.T) {
	reviewerID := uuid.New()
	ownerID := uuid.New()
	businessID := uuid.New()

	t.Run("success", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		env.businessRepo.On("FindByID", mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, UserID: ownerID}, nil)
		env.reviewRepo.On("FindByUserAndSubject", mock.Anything, reviewerID, mock.Anything).
			Return(nil, repository.ErrReviewNotFound)
		env.reviewRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

		review, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessID: &businessID,
			Rating:     4,
			Comment:    "buena atención",
		})
		require.NoError(t, err)
		assert.Equal(t, reviewerID, review.UserID)
		assert.Equal(t, 4, review.Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		env := newReviewServiceForTest(t)

		for _, rating := range []int{0, 6, -1} {
			_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
				BusinessID: &businessID,
				Rating:     rating,
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
		}
	})

	t.Run("own subject rejected", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		env.businessRepo.On("FindByID", mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, UserID: reviewerID}, nil)

		_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessID: &businessID,
			Rating:     5,
		})
		assert.ErrorIs(t, err, domainerrors.ErrReviewOwnSubject)
		env.reviewRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("one review per subject", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		env.businessRepo.On("FindByID", mock.Anything, businessID).
			Return(&entity.Business{ID: businessID, UserID: ownerID}, nil)
		env.reviewRepo.On("FindByUserAndSubject", mock.Anything, reviewerID, mock.Anything).
			Return(&entity.Review{ID: uuid.New()}, nil)

		_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessID: &businessID,
			Rating:     3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
	})

	t.Run("no subject set", func(t *testing.T) {
		env := newReviewServiceForTest(t)

		_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{Rating: 3})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSubject)
	})

	t.Run("two subjects set", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		productID := uuid.New()

		_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			BusinessID: &businessID,
			ProductID:  &productID,
			Rating:     3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidSubject)
	})

	t.Run("missing product subject", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		productID := uuid.New()
		env.productRepo.On("FindByID", mock.Anything, productID).
			Return(nil, repository.ErrProductNotFound)

		_, err := env.srv.CreateReview(context.Background(), reviewerID, &usecase.CreateReviewInput{
			ProductID: &productID,
			Rating:    3,
		})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestReviewService_UpdateReview(t *testing.T) {
	ownerID := uuid.New()
	reviewID := uuid.New()

	t.Run("owner updates rating", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		env.reviewRepo.On("FindByID", mock.Anything, reviewID).
			Return(&entity.Review{ID: reviewID, UserID: ownerID, Rating: 2}, nil)
		env.reviewRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Review")).Return(nil)

		rating := 5
		review, err := env.srv.UpdateReview(context.Background(), ownerID, reviewID, &usecase.UpdateReviewInput{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		env := newReviewServiceForTest(t)
		env.reviewRepo.On("FindByID", mock.Anything, reviewID).
			Return(&entity.Review{ID: reviewID, UserID: ownerID}, nil)

		rating := 1
		_, err := env.srv.UpdateReview(context.Background(), uuid.New(), reviewID, &usecase.UpdateReviewInput{Rating: &rating})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		env.reviewRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestReviewService_ListReviews(t *testing.T) {
	businessID := uuid.New()
	env := newReviewServiceForTest(t)

	items := []*entity.Review{{ID: uuid.New(), Rating: 5}, {ID: uuid.New(), Rating: 4}}
	env.reviewRepo.On("ListBySubject", mock.Anything, mock.Anything, 1, defaultPageLimit).
		Return(items, int64(2), nil)
	env.reviewRepo.On("AggregateBySubject", mock.Anything, mock.Anything).
		Return(&repository.ReviewAggregate{Average: 4.5, Total: 2}, nil)

	output, err := env.srv.ListReviews(context.Background(), &usecase.ListReviewsInput{BusinessID: &businessID})
	require.NoError(t, err)
	assert.Len(t, output.Items, 2)
	assert.InDelta(t, 4.5, output.Aggregate.Average, 0.001)
	assert.Equal(t, defaultPageLimit, output.Limit)

	_, err = env.srv.ListReviews(context.Background(), &usecase.ListReviewsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSubject)
}
