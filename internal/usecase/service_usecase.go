package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ServiceUsecase defines the service listing operations.
type ServiceUsecase interface {
	// CreateService publishes a new service offering for the caller.
	CreateService(ctx context.Context, userID uuid.UUID, input *CreateServiceInput) (*entity.Service, error)

	// UpdateService applies partial changes to the caller's own service.
	UpdateService(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)

	// DeleteService soft-deletes the caller's own service.
	DeleteService(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID) error

	// GetService retrieves an active service and records one view.
	GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// ListServices retrieves the tiered public listing of active services.
	ListServices(ctx context.Context, input *ListServicesInput) (*ServiceListOutput, error)

	// ListOwnServices retrieves the caller's services, optionally narrowed
	// to one status. An empty status returns everything.
	ListOwnServices(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*ServiceListOutput, error)
}

// --- Input DTOs ---

// CreateServiceInput defines the data required to publish a service.
type CreateServiceInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" validate:"required"`
	PriceType    string   `json:"price_type"`
	Price        float64  `json:"price"`
	PriceUnit    string   `json:"price_unit"`
	Images       []string `json:"images"`
	CoverageArea string   `json:"coverage_area"`
}

// UpdateServiceInput defines the partial service update payload.
type UpdateServiceInput struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	PriceType    *string  `json:"price_type,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	PriceUnit    *string  `json:"price_unit,omitempty"`
	Images       []string `json:"images,omitempty"`
	CoverageArea *string  `json:"coverage_area,omitempty"`
}

// ListServicesInput defines the public service listing query.
type ListServicesInput struct {
	CityID     *uuid.UUID
	Category   string
	PriceType  string
	MinPrice   *float64
	MaxPrice   *float64
	BusinessID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// --- Output DTOs ---

// ServiceListOutput is one page of a service listing.
type ServiceListOutput struct {
	Items []*entity.Service `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
