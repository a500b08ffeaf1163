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

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for the global search handler.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search runs one query across businesses, products and services.
func (h *SearchHandler) Search(c echo.Context) error {
	cityID, err := queryUUID(c, "city_id")
	if err != nil {
		return err
	}

	output, err := h.searchUC.Search(c.Request().Context(), &usecase.SearchInput{
		Query:  c.QueryParam("q"),
		CityID: cityID,
		Limit:  queryInt(c, "limit"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
