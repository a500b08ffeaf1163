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

// ServiceHandlerParams holds dependencies for ServiceHandler, injected by Fx.
type ServiceHandlerParams struct {
	fx.In

	ServiceUC usecase.ServiceUsecase
	Logger    *slog.Logger
}

// ServiceHandler holds dependencies for the service listing handlers.
type ServiceHandler struct {
	serviceUC usecase.ServiceUsecase
	logger    *slog.Logger
}

// NewServiceHandler is the constructor for ServiceHandler.
func NewServiceHandler(params ServiceHandlerParams) *ServiceHandler {
	return &ServiceHandler{
		serviceUC: params.ServiceUC,
		logger:    params.Logger,
	}
}

// CreateService publishes a new service offering for the caller.
func (h *ServiceHandler) CreateService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.CreateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.serviceUC.CreateService(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// UpdateService applies partial changes to the caller's own service.
func (h *ServiceHandler) UpdateService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	serviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateServiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	svc, err := h.serviceUC.UpdateService(c.Request().Context(), userID, serviceID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// DeleteService soft-deletes the caller's own service.
func (h *ServiceHandler) DeleteService(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	serviceID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.serviceUC.DeleteService(c.Request().Context(), userID, serviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Service deleted successfully")
}

// GetService returns an active service and records one view.
func (h *ServiceHandler) GetService(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	svc, err := h.serviceUC.GetService(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, svc, "")
}

// ListServices returns the tiered public listing of active services.
func (h *ServiceHandler) ListServices(c echo.Context) error {
	cityID, err := queryUUID(c, "city_id")
	if err != nil {
		return err
	}
	businessID, err := queryUUID(c, "business_id")
	if err != nil {
		return err
	}

	input := &usecase.ListServicesInput{
		CityID:     cityID,
		Category:   c.QueryParam("category"),
		PriceType:  c.QueryParam("price_type"),
		MinPrice:   queryFloat(c, "min_price"),
		MaxPrice:   queryFloat(c, "max_price"),
		BusinessID: businessID,
		Search:     c.QueryParam("search"),
		Page:       queryInt(c, "page"),
		Limit:      queryInt(c, "limit"),
	}

	output, err := h.serviceUC.ListServices(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ListOwnServices returns the caller's services, optionally narrowed to one
// status via the status query parameter.
func (h *ServiceHandler) ListOwnServices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.serviceUC.ListOwnServices(c.Request().Context(), userID,
		c.QueryParam("status"), queryInt(c, "page"), queryInt(c, "limit"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
