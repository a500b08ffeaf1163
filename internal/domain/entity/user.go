// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates a normal, usable account.
	UserStatusActive UserStatus = "ACTIVE"
	// UserStatusSuspended indicates an account blocked by moderation.
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User is the core entity in the system, representing a unique account.
// Every user belongs to exactly one city; all of their published content is
// scoped to that city.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's login identifier. Unique across the system.
	PasswordHash string     // The bcrypt hash of the user's password. Never serialized.
	FirstName    string     // The user's given name.
	LastName     string     // The user's family name.
	Phone        string     // Contact phone number.
	WhatsApp     string     // WhatsApp contact number shown on public listings.
	Avatar       string     // URL of the user's avatar image.
	Role         Role       // The account type. Non-customer roles own a Business.
	Status       UserStatus // Account lifecycle state.
	CityID       uuid.UUID  // The city this account is scoped to.
	Business     *Business  // The owned business. Nil for customer accounts.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification.
}
