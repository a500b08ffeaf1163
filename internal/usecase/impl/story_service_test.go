package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"vitrina/config"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStoryServiceForTest(t *testing.T, now time.Time) (*storyService, *mockStoryRepo, *mockUserRepo) {
	t.Helper()

	storyRepo := &mockStoryRepo{}
	userRepo := &mockUserRepo{}

	cfg := &config.Config{}
	cfg.Story.DailyLimit = 5

	srv := NewStoryService(StoryServiceParams{
		StoryRepo: storyRepo,
		UserRepo:  userRepo,
		Config:    cfg,
		Logger:    testLogger(),
	}).(*storyService)
	srv.now = func() time.Time { return now }

	return srv, storyRepo, userRepo
}

func vendorUser(businessID uuid.UUID) *entity.User {
	return &entity.User{
		ID:     uuid.New(),
		Role:   entity.RoleBusiness,
		CityID: uuid.New(),
		Business: &entity.Business{
			ID: businessID,
		},
	}
}

func TestStoryService_CreateStory(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	now := time.Date(2026, 3, 10, 11, 0, 0, 0, loc)

	t.Run("success stamps end of day expiry", func(t *testing.T) {
		srv, storyRepo, userRepo := newStoryServiceForTest(t, now)
		businessID := uuid.New()
		user := vendorUser(businessID)

		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		dayStart, dayEnd := entity.DayBounds(now)
		storyRepo.On("CountCreatedBetween", mock.Anything, user.ID, dayStart, dayEnd).Return(int64(2), nil)
		storyRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Story")).Return(nil)

		story, err := srv.CreateStory(context.Background(), user.ID, &usecase.CreateStoryInput{
			Type:  "OFFER",
			Title: "2x1 en empanadas",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.StoryExpiry(now), story.ExpiresAt)
		assert.Equal(t, user.CityID, story.CityID)
		require.NotNil(t, story.BusinessID)
		assert.Equal(t, businessID, *story.BusinessID)
		storyRepo.AssertExpectations(t)
	})

	t.Run("sixth story of the day is rejected", func(t *testing.T) {
		srv, storyRepo, userRepo := newStoryServiceForTest(t, now)
		user := vendorUser(uuid.New())

		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		storyRepo.On("CountCreatedBetween", mock.Anything, user.ID, mock.Anything, mock.Anything).Return(int64(5), nil)

		_, err := srv.CreateStory(context.Background(), user.ID, &usecase.CreateStoryInput{Title: "sexta"})
		assert.ErrorIs(t, err, domainerrors.ErrStoryDailyLimit)
		storyRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("customers cannot publish", func(t *testing.T) {
		srv, _, userRepo := newStoryServiceForTest(t, now)
		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}

		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		_, err := srv.CreateStory(context.Background(), user.ID, &usecase.CreateStoryInput{Title: "oferta"})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("linking both a product and a service is rejected", func(t *testing.T) {
		srv, _, _ := newStoryServiceForTest(t, now)
		productID, serviceID := uuid.New(), uuid.New()

		_, err := srv.CreateStory(context.Background(), uuid.New(), &usecase.CreateStoryInput{
			Title:     "oferta",
			ProductID: &productID,
			ServiceID: &serviceID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestStoryService_GetStory(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	created := time.Date(2026, 3, 10, 11, 0, 0, 0, loc)

	t.Run("live story records a view and reports its click-through rate", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, created.Add(2*time.Hour))
		story := &entity.Story{
			ID:         uuid.New(),
			ViewCount:  200,
			ClickCount: 50,
			ExpiresAt:  entity.StoryExpiry(created),
		}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)
		storyRepo.On("IncrementViewCount", mock.Anything, story.ID).Return(nil)

		output, err := srv.GetStory(context.Background(), story.ID)
		require.NoError(t, err)
		assert.InDelta(t, 25.0, output.CTR, 0.001)
		storyRepo.AssertCalled(t, "IncrementViewCount", mock.Anything, story.ID)
	})

	t.Run("view counter failure does not block the read", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, created.Add(2*time.Hour))
		story := &entity.Story{ID: uuid.New(), ExpiresAt: entity.StoryExpiry(created)}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)
		storyRepo.On("IncrementViewCount", mock.Anything, story.ID).Return(errors.New("db down"))

		_, err := srv.GetStory(context.Background(), story.ID)
		assert.NoError(t, err)
	})

	t.Run("expired story reads as not found", func(t *testing.T) {
		nextDay := time.Date(2026, 3, 11, 0, 30, 0, 0, loc)
		srv, storyRepo, _ := newStoryServiceForTest(t, nextDay)
		story := &entity.Story{ID: uuid.New(), ExpiresAt: entity.StoryExpiry(created)}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)

		_, err := srv.GetStory(context.Background(), story.ID)
		assert.ErrorIs(t, err, domainerrors.ErrStoryNotFound)
		storyRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	})
}

func TestStoryService_RecordView(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)
	created := time.Date(2026, 3, 10, 11, 0, 0, 0, loc)

	t.Run("counter failure is swallowed", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, created.Add(time.Hour))
		story := &entity.Story{ID: uuid.New(), ExpiresAt: entity.StoryExpiry(created)}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)
		storyRepo.On("IncrementViewCount", mock.Anything, story.ID).Return(errors.New("db down"))

		assert.NoError(t, srv.RecordView(context.Background(), story.ID))
	})

	t.Run("expired story rejects the view", func(t *testing.T) {
		nextDay := time.Date(2026, 3, 11, 9, 0, 0, 0, loc)
		srv, storyRepo, _ := newStoryServiceForTest(t, nextDay)
		story := &entity.Story{ID: uuid.New(), ExpiresAt: entity.StoryExpiry(created)}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)

		err := srv.RecordView(context.Background(), story.ID)
		assert.ErrorIs(t, err, domainerrors.ErrStoryNotFound)
		storyRepo.AssertNotCalled(t, "IncrementViewCount", mock.Anything, mock.Anything)
	})
}

func TestStoryService_GetStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("expired story still reports stats to its owner", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, now)
		userID := uuid.New()
		story := &entity.Story{
			ID:         uuid.New(),
			UserID:     userID,
			ViewCount:  200,
			ClickCount: 50,
			ExpiresAt:  now.Add(-time.Hour),
		}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)

		stats, err := srv.GetStats(context.Background(), userID, story.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(200), stats.Views)
		assert.Equal(t, int64(50), stats.Clicks)
		assert.InDelta(t, 25.0, stats.CTR, 0.001)
		assert.True(t, stats.IsExpired)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, now)
		story := &entity.Story{ID: uuid.New(), UserID: uuid.New()}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)

		_, err := srv.GetStats(context.Background(), uuid.New(), story.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestStoryService_DeleteStory(t *testing.T) {
	now := time.Now()

	t.Run("owner deletes", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, now)
		userID := uuid.New()
		story := &entity.Story{ID: uuid.New(), UserID: userID}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)
		storyRepo.On("Delete", mock.Anything, story.ID).Return(nil)

		assert.NoError(t, srv.DeleteStory(context.Background(), userID, story.ID))
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		srv, storyRepo, _ := newStoryServiceForTest(t, now)
		story := &entity.Story{ID: uuid.New(), UserID: uuid.New()}
		storyRepo.On("FindByID", mock.Anything, story.ID).Return(story, nil)

		err := srv.DeleteStory(context.Background(), uuid.New(), story.ID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		storyRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestStoryService_SweepExpired(t *testing.T) {
	now := time.Now()
	srv, storyRepo, _ := newStoryServiceForTest(t, now)
	storyRepo.On("DeleteExpiredBefore", mock.Anything, now).Return(int64(3), nil)

	deleted, err := srv.SweepExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
}

func TestStoryService_CreateStory_UnknownUser(t *testing.T) {
	srv, _, userRepo := newStoryServiceForTest(t, time.Now())
	userID := uuid.New()
	userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

	_, err := srv.CreateStory(context.Background(), userID, &usecase.CreateStoryInput{Title: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
