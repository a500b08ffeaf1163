package service

import (
	"context"

	"github.com/google/uuid"
)

// PaymentPreference is the checkout handle created at the gateway for a
// pending subscription payment.
type PaymentPreference struct {
	ExternalID  string // Gateway-side reference, stored on the payment row.
	CheckoutURL string // Where the buyer completes the payment.
}

// PaymentNotification describes a gateway webhook event after lookup.
type PaymentNotification struct {
	ExternalID string
	Approved   bool
}

// PaymentGateway defines the interface for external payment providers.
// Only gateway-confirmed methods go through it; cash and bank transfer
// subscriptions activate without gateway involvement.
type PaymentGateway interface {
	// CreatePreference registers a pending payment at the gateway and
	// returns the checkout handle.
	CreatePreference(ctx context.Context, subscriptionID uuid.UUID, amount float64, description string) (*PaymentPreference, error)

	// LookupPayment resolves a webhook's payment reference to its current
	// state at the gateway.
	LookupPayment(ctx context.Context, paymentRef string) (*PaymentNotification, error)
}
