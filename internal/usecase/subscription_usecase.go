package usecase

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionUsecase defines the paid plan lifecycle operations.
type SubscriptionUsecase interface {
	// Subscribe starts a PARTNER subscription for the caller's business.
	// Gateway methods return a checkout URL and leave the subscription
	// PAYMENT_PENDING; manual methods activate immediately.
	Subscribe(ctx context.Context, userID uuid.UUID, input *SubscribeInput) (*SubscribeOutput, error)

	// Cancel opts the caller's business out of renewal. Benefits persist
	// until the period's end date.
	Cancel(ctx context.Context, userID uuid.UUID) error

	// GetCurrent retrieves the caller's plan snapshot together with the
	// running subscription, if one exists. FREE businesses get a snapshot
	// with a nil subscription.
	GetCurrent(ctx context.Context, userID uuid.UUID) (*SubscriptionStatusOutput, error)

	// History retrieves all of the caller's subscriptions newest first.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	// HandleWebhook processes a payment gateway notification. Replayed
	// notifications for already-active subscriptions are no-ops.
	HandleWebhook(ctx context.Context, input *WebhookInput) error

	// ExpireDue downgrades businesses whose ACTIVE subscription has ended,
	// returning how many were expired. Called by the scheduler.
	ExpireDue(ctx context.Context, now time.Time) (int, error)
}

// --- Input DTOs ---

// SubscribeInput defines the data required to start a subscription.
type SubscribeInput struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required"`
}

// WebhookInput is the decoded payment gateway notification.
type WebhookInput struct {
	Type       string `json:"type"`
	PaymentRef string `json:"payment_ref"`
}

// --- Output DTOs ---

// SubscribeOutput carries the created subscription and, for gateway
// methods, the checkout URL the buyer must visit.
type SubscribeOutput struct {
	Subscription *entity.Subscription `json:"subscription"`
	CheckoutURL  string               `json:"checkout_url,omitempty"`
}

// SubscriptionStatusOutput is the caller's plan snapshot. Subscription is
// nil when no subscription is currently running.
type SubscriptionStatusOutput struct {
	Plan         entity.Plan               `json:"plan"`
	Status       entity.SubscriptionStatus `json:"status,omitempty"`
	StartDate    *time.Time                `json:"start_date,omitempty"`
	EndDate      *time.Time                `json:"end_date,omitempty"`
	Subscription *entity.Subscription      `json:"subscription"`
}
