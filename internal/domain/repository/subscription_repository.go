package repository

import (
	"context"
	"errors"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when a subscription does not exist.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository defines the operations for subscription persistence.
type SubscriptionRepository interface {
	// Create persists a new subscription.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// Update modifies an existing subscription.
	Update(ctx context.Context, subscription *entity.Subscription) error

	// FindByID retrieves a subscription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindActiveByBusiness retrieves the business's subscription in the
	// ACTIVE or PAYMENT_PENDING state, if any.
	FindActiveByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.Subscription, error)

	// ListByBusiness retrieves all of a business's subscriptions newest first.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Subscription, error)

	// ListActiveDue retrieves ACTIVE subscriptions whose end date is at or
	// before now, for the nightly expiry sweep.
	ListActiveDue(ctx context.Context, now time.Time) ([]*entity.Subscription, error)

	// UpdateStatus sets the subscription's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error

	// MarkCancelled sets the status to CANCELLED and turns auto renew off.
	MarkCancelled(ctx context.Context, id uuid.UUID) error
}
