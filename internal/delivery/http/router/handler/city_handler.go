package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/response"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CityHandlerParams holds dependencies for CityHandler, injected by Fx.
type CityHandlerParams struct {
	fx.In

	CityUC usecase.CityUsecase
	Logger *slog.Logger
}

// CityHandler holds dependencies for the city catalog handlers.
type CityHandler struct {
	cityUC usecase.CityUsecase
	logger *slog.Logger
}

// NewCityHandler is the constructor for CityHandler.
func NewCityHandler(params CityHandlerParams) *CityHandler {
	return &CityHandler{
		cityUC: params.CityUC,
		logger: params.Logger,
	}
}

// ListCities returns the active cities, optionally filtered by search term.
func (h *CityHandler) ListCities(c echo.Context) error {
	cities, err := h.cityUC.ListCities(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cities, "")
}

// GetCity returns one active city.
func (h *CityHandler) GetCity(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	city, err := h.cityUC.GetCity(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, city, "")
}
