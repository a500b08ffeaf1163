package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StoryHandlerParams holds dependencies for StoryHandler, injected by Fx.
type StoryHandlerParams struct {
	fx.In

	StoryUC usecase.StoryUsecase
	Logger  *slog.Logger
}

// StoryHandler holds dependencies for the ephemeral story handlers.
type StoryHandler struct {
	storyUC usecase.StoryUsecase
	logger  *slog.Logger
}

// NewStoryHandler is the constructor for StoryHandler.
func NewStoryHandler(params StoryHandlerParams) *StoryHandler {
	return &StoryHandler{
		storyUC: params.StoryUC,
		logger:  params.Logger,
	}
}

// CreateStory publishes a story expiring at the end of the current day.
func (h *StoryHandler) CreateStory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateStoryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid story input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	story, err := h.storyUC.CreateStory(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, story, "Story created successfully")
}

// GetStory returns an unexpired story with its click-through rate.
func (h *StoryHandler) GetStory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	output, err := h.storyUC.GetStory(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListActiveStories returns unexpired stories, optionally scoped to a city.
func (h *StoryHandler) ListActiveStories(c echo.Context) error {
	cityID, err := queryUUID(c, "city_id")
	if err != nil {
		return err
	}

	stories, err := h.storyUC.ListActiveStories(c.Request().Context(), cityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// ListOwnStories returns the caller's stories with their metrics.
func (h *StoryHandler) ListOwnStories(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	includeExpired, _ := strconv.ParseBool(c.QueryParam("include_expired"))

	stories, err := h.storyUC.ListOwnStories(c.Request().Context(), userID, includeExpired)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stories, "")
}

// DeleteStory removes the caller's own story permanently.
func (h *StoryHandler) DeleteStory(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	storyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.storyUC.DeleteStory(c.Request().Context(), userID, storyID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Story deleted successfully")
}

// GetStats returns the owner's story counters and click-through rate.
func (h *StoryHandler) GetStats(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	storyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.storyUC.GetStats(c.Request().Context(), userID, storyID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// RecordView counts one view against an unexpired story.
func (h *StoryHandler) RecordView(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.storyUC.RecordView(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// RecordClick counts one click against an unexpired story.
func (h *StoryHandler) RecordClick(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.storyUC.RecordClick(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}
