package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler holds dependencies for the bookmark handlers.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler.
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavorite bookmarks exactly one subject for the caller.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.AddFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added successfully")
}

// RemoveFavorite deletes the caller's own favorite.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	favoriteID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), userID, favoriteID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

// CheckFavorite reports whether the caller has bookmarked the subject given
// by exactly one of the subject ID query parameters.
func (h *FavoriteHandler) CheckFavorite(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return err
	}
	productID, err := queryUUID(c, "product_id")
	if err != nil {
		return err
	}
	serviceID, err := queryUUID(c, "service_id")
	if err != nil {
		return err
	}

	output, err := h.favoriteUC.CheckFavorite(c.Request().Context(), userID, &usecase.AddFavoriteInput{
		BusinessID: businessID,
		ProductID:  productID,
		ServiceID:  serviceID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListFavorites returns the caller's favorites, optionally narrowed to one
// subject type via the type query parameter.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.favoriteUC.ListFavorites(c.Request().Context(), userID,
		c.QueryParam("type"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
