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

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for the paid plan handlers.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// webhookRequest is the decoded MercadoPago notification. The gateway sends
// the payment reference either in the body or as query parameters.
type webhookRequest struct {
	Type string `json:"type" query:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Subscribe starts a PARTNER subscription for the caller's business.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var input usecase.SubscribeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.subscriptionUC.Subscribe(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Subscription created successfully")
}

// Cancel opts the caller's business out of renewal.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.subscriptionUC.Cancel(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription cancelled successfully")
}

// GetCurrent returns the caller's plan snapshot and running subscription.
func (h *SubscriptionHandler) GetCurrent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.subscriptionUC.GetCurrent(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// History returns all of the caller's subscriptions newest first.
func (h *SubscriptionHandler) History(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	subscriptions, err := h.subscriptionUC.History(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, subscriptions, "")
}

// Webhook processes a payment gateway notification. It always acknowledges
// with 200 for recognized payloads so the gateway stops retrying.
func (h *SubscriptionHandler) Webhook(c echo.Context) error {
	var req webhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	paymentRef := req.Data.ID
	if paymentRef == "" {
		paymentRef = c.QueryParam("data.id")
	}

	err := h.subscriptionUC.HandleWebhook(c.Request().Context(), &usecase.WebhookInput{
		Type:       req.Type,
		PaymentRef: paymentRef,
	})
	if err != nil {
		// The gateway retries on any non-2xx answer. Failures are logged
		// and acknowledged so processing can be replayed out of band.
		h.logger.ErrorContext(c.Request().Context(), "webhook processing failed",
			slog.String("type", req.Type),
			slog.String("payment_ref", paymentRef),
			slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, nil, "")
}
