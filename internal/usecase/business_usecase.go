package usecase

import (
	"context"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
)

// BusinessUsecase defines the business-profile operations.
type BusinessUsecase interface {
	// CreateBusiness creates a business for a user who does not own one
	// yet, generating a unique slug from the name.
	CreateBusiness(ctx context.Context, userID uuid.UUID, input *CreateBusinessInput) (*entity.Business, error)

	// UpdateBusiness applies partial changes to the caller's own business.
	UpdateBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, input *UpdateBusinessInput) (*entity.Business, error)

	// DeleteBusiness removes the caller's own business. Dependent records
	// cascade at the database level.
	DeleteBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) error

	// GetBusiness retrieves a business detail by ID and records one view.
	GetBusiness(ctx context.Context, id uuid.UUID) (*BusinessDetailOutput, error)

	// GetBusinessBySlug retrieves a business detail by slug and records one view.
	GetBusinessBySlug(ctx context.Context, slug string) (*BusinessDetailOutput, error)

	// GetOwnBusiness retrieves the caller's business without recording a view.
	GetOwnBusiness(ctx context.Context, userID uuid.UUID) (*entity.Business, error)

	// ListBusinesses retrieves the tiered public listing.
	ListBusinesses(ctx context.Context, input *ListBusinessesInput) (*BusinessListOutput, error)
}

// --- Input DTOs ---

// CreateBusinessInput defines the data required to create a business profile.
type CreateBusinessInput struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category" validate:"required"`
	Phone       string    `json:"phone"`
	WhatsApp    string    `json:"whatsapp"`
	Email       string    `json:"email"`
	Website     string    `json:"website"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CityID      uuid.UUID `json:"city_id" validate:"required"`
}

// UpdateBusinessInput defines the partial business update payload.
type UpdateBusinessInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Logo        *string  `json:"logo,omitempty"`
	CoverImage  *string  `json:"cover_image,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	WhatsApp    *string  `json:"whatsapp,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// ListBusinessesInput defines the public listing query.
type ListBusinessesInput struct {
	CityID   *uuid.UUID
	Category string
	Verified *bool
	Plan     *entity.Plan
	Search   string
	Page     int
	Limit    int
}

// --- Output DTOs ---

// BusinessDetailOutput is a business plus its review summary.
type BusinessDetailOutput struct {
	Business *entity.Business             `json:"business"`
	Reviews  *repository.ReviewAggregate  `json:"reviews"`
}

// BusinessListOutput is one page of the public business listing.
type BusinessListOutput struct {
	Items []*entity.Business `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
