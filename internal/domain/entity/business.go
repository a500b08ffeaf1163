package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is the subscription tier of a business. The tier is the primary sort
// key of every public listing: PARTNER listings always rank above FREE ones
// for the same filter set. The string values sort correctly under a plain
// descending ORDER BY ("PARTNER" > "FREE").
type Plan string

const (
	// PlanFree is the default tier.
	PlanFree Plan = "FREE"
	// PlanPartner is the paid tier with listing priority.
	PlanPartner Plan = "PARTNER"
)

// String returns the string representation of the Plan.
func (p Plan) String() string {
	return string(p)
}

// IsValid checks if the Plan is a valid value.
func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPartner:
		return true
	default:
		return false
	}
}

// AccountStatus represents the moderation state of a business profile.
type AccountStatus string

const (
	// AccountStatusActive indicates a publicly visible business.
	AccountStatusActive AccountStatus = "ACTIVE"
	// AccountStatusSuspended indicates a business hidden by moderation.
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Business represents a commercial profile owned by exactly one user.
// It is the anchor for products, services, stories, reviews and
// subscriptions, and carries a denormalized snapshot of the current
// subscription so listing queries never need to join the subscription table.
type Business struct {
	ID                    uuid.UUID
	UserID                uuid.UUID // The owning user. Unique: one business per user.
	Slug                  string    // URL-safe unique identifier derived from the name.
	Name                  string
	Description           string
	Category              string
	Logo                  string
	CoverImage            string
	Phone                 string
	WhatsApp              string
	Email                 string
	Website               string
	Address               string
	Latitude              float64
	Longitude             float64
	SubscriptionPlan      Plan               // Denormalized current tier, kept in sync by the subscription lifecycle.
	SubscriptionStatus    SubscriptionStatus // Denormalized current subscription state.
	SubscriptionStartDate *time.Time
	SubscriptionEndDate   *time.Time
	Verified              bool
	ViewCount             int64
	AccountStatus         AccountStatus
	CityID                uuid.UUID
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
