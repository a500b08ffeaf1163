package handler

import (
	"log/slog"
	"net/http"

	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/response"
	"vitrina/internal/domain/entity"
	"vitrina/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for the business profile handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// CreateBusiness creates a business profile for the caller.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, business, "Business created successfully")
}

// UpdateBusiness applies partial changes to the caller's own business.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateBusinessInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	business, err := h.businessUC.UpdateBusiness(c.Request().Context(), userID, businessID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "Business updated successfully")
}

// DeleteBusiness removes the caller's own business permanently.
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.businessUC.DeleteBusiness(c.Request().Context(), userID, businessID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Business deleted successfully")
}

// GetBusiness returns a public business detail by ID and records one view.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.businessUC.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// GetBusinessBySlug returns a public business detail by slug and records one view.
func (h *BusinessHandler) GetBusinessBySlug(c echo.Context) error {
	detail, err := h.businessUC.GetBusinessBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "")
}

// GetOwnBusiness returns the caller's business without recording a view.
func (h *BusinessHandler) GetOwnBusiness(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	business, err := h.businessUC.GetOwnBusiness(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, business, "")
}

// ListBusinesses returns the tiered public business listing.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	cityID, err := queryUUID(c, "city_id")
	if err != nil {
		return err
	}

	input := &usecase.ListBusinessesInput{
		CityID:   cityID,
		Category: c.QueryParam("category"),
		Verified: queryBool(c, "verified"),
		Search:   c.QueryParam("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}
	if raw := c.QueryParam("plan"); raw != "" {
		plan := entity.Plan(raw)
		if !plan.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid plan")
		}
		input.Plan = &plan
	}

	output, err := h.businessUC.ListBusinesses(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
