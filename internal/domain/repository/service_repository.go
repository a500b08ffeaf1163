package repository

import (
	"context"
	"errors"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service does not exist.
var ErrServiceNotFound = errors.New("service not found")

// ServiceFilter captures the query parameters of the public service listing.
type ServiceFilter struct {
	CityID     *uuid.UUID
	Category   string
	PriceType  string
	MinPrice   *float64
	MaxPrice   *float64
	UserID     *uuid.UUID
	BusinessID *uuid.UUID
	Search     string
	Status     *entity.ListingStatus
	Page       int
	Limit      int
}

// ServiceRepository defines the operations for service persistence.
type ServiceRepository interface {
	// Create persists a new service.
	Create(ctx context.Context, service *entity.Service) error

	// Update modifies an existing service.
	Update(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// List retrieves services matching the filter, ordered by the owning
	// business's subscription plan desc (businessless rows last) and then
	// created_at desc. Returns the page and the total match count.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.Service, int64, error)

	// SetStatus flips the soft-delete flag.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error

	// IncrementViewCount atomically adds one to the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
