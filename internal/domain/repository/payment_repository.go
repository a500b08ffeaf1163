package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPaymentNotFound is returned when a payment does not exist.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the operations for payment persistence.
type PaymentRepository interface {
	// Create persists a new payment.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByID retrieves a payment by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindByExternalID retrieves a payment by the gateway's reference,
	// used by the webhook to correlate notifications.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error)

	// UpdateStatus sets the payment's status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error

	// SetExternalID attaches the gateway's reference to a payment once the
	// checkout preference has been created.
	SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error

	// ListBySubscription retrieves a subscription's payments newest first.
	ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.Payment, error)
}
