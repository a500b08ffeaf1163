// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for account-related business operations.
type UserUsecase interface {
	// Register creates a new account. Roles that own a business also get
	// their business profile created in the same transaction.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// GetProfile retrieves the authenticated user's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial changes to the user's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required,min=6"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone"`
	WhatsApp  string    `json:"whatsapp"`
	Role      string    `json:"role" validate:"required"`
	CityID    uuid.UUID `json:"city_id" validate:"required"`

	// Business fields, required for roles that own a business.
	BusinessName        string `json:"business_name"`
	BusinessDescription string `json:"business_description"`
	BusinessCategory    string `json:"business_category"`
	BusinessAddress     string `json:"business_address"`
	BusinessPhone       string `json:"business_phone"`
}

// LoginInput defines the credentials for authentication.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput defines the partial profile update payload.
// Nil pointers leave the corresponding field untouched.
type UpdateProfileInput struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	WhatsApp  *string `json:"whatsapp,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

// --- Output DTOs ---

// AuthOutput carries the authenticated user and their token pair.
type AuthOutput struct {
	User         *entity.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
}
