package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
// Transitions: PAYMENT_PENDING -> ACTIVE -> {CANCELLED, EXPIRED}.
// Gateway-mediated payments start PAYMENT_PENDING and only become ACTIVE via
// the payment webhook; other payment methods activate immediately.
type SubscriptionStatus string

const (
	// SubscriptionActive indicates a running subscription.
	SubscriptionActive SubscriptionStatus = "ACTIVE"
	// SubscriptionCancelled indicates the owner opted out of renewal.
	// Benefits persist until the end date.
	SubscriptionCancelled SubscriptionStatus = "CANCELLED"
	// SubscriptionExpired indicates the end date has passed.
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
	// SubscriptionPaymentPending indicates the gateway has not yet
	// confirmed the initial payment.
	SubscriptionPaymentPending SubscriptionStatus = "PAYMENT_PENDING"
)

// String returns the string representation of the SubscriptionStatus.
func (s SubscriptionStatus) String() string {
	return string(s)
}

// PaymentMethod identifies how a subscription is paid.
type PaymentMethod string

const (
	// PaymentMethodMercadoPago routes through the MercadoPago gateway and
	// requires webhook confirmation before activation.
	PaymentMethodMercadoPago PaymentMethod = "MERCADOPAGO"
	// PaymentMethodBankTransfer is settled manually and activates
	// immediately.
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	// PaymentMethodCash is settled in person and activates immediately.
	PaymentMethodCash PaymentMethod = "CASH"
)

// RequiresGatewayConfirmation reports whether activation must wait for an
// external payment confirmation.
func (m PaymentMethod) RequiresGatewayConfirmation() bool {
	return m == PaymentMethodMercadoPago
}

// Subscription is one paid period of the PARTNER plan for a business.
// A business has at most one ACTIVE subscription at a time; the check is an
// application-level rule, not a storage constraint.
type Subscription struct {
	ID            uuid.UUID
	BusinessID    uuid.UUID
	Plan          Plan
	Status        SubscriptionStatus
	Amount        float64
	PaymentMethod PaymentMethod
	StartDate     time.Time
	EndDate       time.Time
	AutoRenew     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
