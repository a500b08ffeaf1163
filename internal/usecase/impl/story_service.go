package impl

import (
	"context"
	"log/slog"
	"time"

	"vitrina/config"
	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// storyService implements the StoryUsecase interface.
//
// All expiry math runs in the process-local timezone: a story expires at
// 23:59:59.999 of its creation day, and the daily quota counts stories
// created within the same calendar day.
type storyService struct {
	storyRepo  repository.StoryRepository
	userRepo   repository.UserRepository
	dailyLimit int
	logger     *slog.Logger
	now        func() time.Time
}

// StoryServiceParams holds dependencies for StoryService, injected by Fx.
type StoryServiceParams struct {
	fx.In

	StoryRepo repository.StoryRepository
	UserRepo  repository.UserRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewStoryService is the constructor for storyService.
func NewStoryService(params StoryServiceParams) usecase.StoryUsecase {
	dailyLimit := 5
	if params.Config != nil && params.Config.Story.DailyLimit > 0 {
		dailyLimit = params.Config.Story.DailyLimit
	}

	return &storyService{
		storyRepo:  params.StoryRepo,
		userRepo:   params.UserRepo,
		dailyLimit: dailyLimit,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *storyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStory publishes a story expiring at the end of the current day.
func (srv *storyService) CreateStory(ctx context.Context, userID uuid.UUID, input *usecase.CreateStoryInput) (*entity.Story, error) {
	if input.ProductID != nil && input.ServiceID != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a story may link a product or a service, not both")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role == entity.RoleCustomer {
		return nil, domainerrors.ErrForbidden.WrapMessage("customers cannot publish stories")
	}

	now := srv.now()
	dayStart, dayEnd := entity.DayBounds(now)
	count, err := srv.storyRepo.CountCreatedBetween(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stories for quota")
	}
	if count >= int64(srv.dailyLimit) {
		return nil, domainerrors.ErrStoryDailyLimit
	}

	story := &entity.Story{
		UserID:    user.ID,
		CityID:    user.CityID,
		Type:      input.Type,
		Title:     input.Title,
		Image:     input.Image,
		Link:      input.Link,
		ProductID: input.ProductID,
		ServiceID: input.ServiceID,
		ExpiresAt: entity.StoryExpiry(now),
	}
	if user.Business != nil {
		story.BusinessID = &user.Business.ID
	}

	if err := srv.storyRepo.Create(ctx, story); err != nil {
		return nil, errors.Wrap(err, "failed to create story")
	}

	srv.log(ctx).Info("Story created",
		slog.Any("storyID", story.ID),
		slog.Any("userID", user.ID),
		slog.Time("expiresAt", story.ExpiresAt),
	)

	return story, nil
}

// GetStory retrieves an unexpired story and records one view. An expired
// story is reported as not found even while the row still exists.
func (srv *storyService) GetStory(ctx context.Context, id uuid.UUID) (*usecase.StoryOutput, error) {
	story, err := srv.liveStory(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := srv.storyRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record story view", slog.Any("storyID", id), slog.Any("error", err))
	}

	return &usecase.StoryOutput{Story: story, CTR: story.CTR()}, nil
}

// ListActiveStories retrieves unexpired stories in tier order.
func (srv *storyService) ListActiveStories(ctx context.Context, cityID *uuid.UUID) ([]*usecase.StoryOutput, error) {
	stories, err := srv.storyRepo.ListActive(ctx, cityID, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active stories")
	}

	return toStoryOutputs(stories), nil
}

// ListOwnStories retrieves the caller's stories.
func (srv *storyService) ListOwnStories(ctx context.Context, userID uuid.UUID, includeExpired bool) ([]*usecase.StoryOutput, error) {
	stories, err := srv.storyRepo.ListByUser(ctx, userID, includeExpired, srv.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own stories")
	}

	return toStoryOutputs(stories), nil
}

// GetStats retrieves the caller's own story counters. Unlike reads, an
// expired story still reports its stats until the sweep removes it.
func (srv *storyService) GetStats(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) (*usecase.StoryStatsOutput, error) {
	story, err := srv.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story")
	}
	if story.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return &usecase.StoryStatsOutput{
		Views:     story.ViewCount,
		Clicks:    story.ClickCount,
		CTR:       story.CTR(),
		IsExpired: story.Expired(srv.now()),
	}, nil
}

// DeleteStory removes the caller's own story permanently.
func (srv *storyService) DeleteStory(ctx context.Context, userID uuid.UUID, storyID uuid.UUID) error {
	story, err := srv.storyRepo.FindByID(ctx, storyID)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return domainerrors.ErrStoryNotFound
		}

		return errors.Wrap(err, "failed to find story")
	}
	if story.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.storyRepo.Delete(ctx, storyID); err != nil {
		return errors.Wrap(err, "failed to delete story")
	}

	return nil
}

// RecordView counts one view against an unexpired story. The increment is
// fire and forget: a counter failure is logged and swallowed.
func (srv *storyService) RecordView(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.liveStory(ctx, id); err != nil {
		return err
	}

	if err := srv.storyRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record story view", slog.Any("storyID", id), slog.Any("error", err))
	}

	return nil
}

// RecordClick counts one click against an unexpired story.
func (srv *storyService) RecordClick(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.liveStory(ctx, id); err != nil {
		return err
	}

	if err := srv.storyRepo.IncrementClickCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record story click", slog.Any("storyID", id), slog.Any("error", err))
	}

	return nil
}

// SweepExpired hard-deletes stories expired at or before the cutoff.
func (srv *storyService) SweepExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := srv.storyRepo.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sweep expired stories")
	}

	if deleted > 0 {
		srv.log(ctx).Info("Expired stories swept", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))
	}

	return deleted, nil
}

func (srv *storyService) liveStory(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	story, err := srv.storyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoryNotFound) {
			return nil, domainerrors.ErrStoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find story")
	}
	if story.Expired(srv.now()) {
		return nil, domainerrors.ErrStoryNotFound
	}

	return story, nil
}

func toStoryOutputs(stories []*entity.Story) []*usecase.StoryOutput {
	outputs := make([]*usecase.StoryOutput, 0, len(stories))
	for _, story := range stories {
		outputs = append(outputs, &usecase.StoryOutput{Story: story, CTR: story.CTR()})
	}

	return outputs
}
