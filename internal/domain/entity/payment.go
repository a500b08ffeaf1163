package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus represents the settlement state of a payment record.
type PaymentStatus string

const (
	// PaymentPending indicates the gateway has not yet confirmed.
	PaymentPending PaymentStatus = "PENDING"
	// PaymentCompleted indicates a settled payment.
	PaymentCompleted PaymentStatus = "COMPLETED"
	// PaymentFailed indicates the gateway rejected the payment.
	PaymentFailed PaymentStatus = "FAILED"
)

// Payment records one payment attempt for a subscription. Gateway payments
// carry the gateway's external id, which the webhook uses to locate the
// record.
type Payment struct {
	ID             uuid.UUID
	SubscriptionID uuid.UUID
	Amount         float64
	PaymentMethod  PaymentMethod
	Status         PaymentStatus
	ExternalID     string // Gateway payment id. Empty for manual methods.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
