package repository

import (
	"context"
	"errors"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter captures the query parameters of the public product listing.
type ProductFilter struct {
	CityID     *uuid.UUID
	Category   string
	Condition  string
	MinPrice   *float64
	MaxPrice   *float64
	UserID     *uuid.UUID
	BusinessID *uuid.UUID
	Search     string
	Status     *entity.ListingStatus
	LiveOnly   bool      // Restrict to ACTIVE rows that have not expired at Now.
	Now        time.Time // Liveness reference instant, used when LiveOnly is set.
	Page       int
	Limit      int
}

// ProductRepository defines the operations for product persistence.
//
// List joins through the owning business so the tier sort applies:
// subscription plan desc with businessless rows last, then created_at desc.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter, returning the page and
	// the total match count.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// SetStatus flips the soft-delete flag. Rows are never removed so
	// historical reviews and favorites keep their references.
	SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error

	// IncrementViewCount atomically adds one to the view counter.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
}
