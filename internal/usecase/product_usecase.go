package usecase

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductUsecase defines the product listing operations.
type ProductUsecase interface {
	// CreateProduct publishes a new product for the caller.
	CreateProduct(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies partial changes to the caller's own product.
	UpdateProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes the caller's own product.
	DeleteProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error

	// GetProduct retrieves a live product and records one view.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves the tiered public listing of live products.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// ListOwnProducts retrieves the caller's products, optionally narrowed
	// to one status. An empty status returns everything.
	ListOwnProducts(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*ProductListOutput, error)
}

// --- Input DTOs ---

// CreateProductInput defines the data required to publish a product.
type CreateProductInput struct {
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Category    string     `json:"category" validate:"required"`
	Price       float64    `json:"price" validate:"gte=0"`
	Condition   string     `json:"condition"`
	Images      []string   `json:"images"`
	Stock       int        `json:"stock"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// UpdateProductInput defines the partial product update payload.
type UpdateProductInput struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Condition   *string    `json:"condition,omitempty"`
	Images      []string   `json:"images,omitempty"`
	Stock       *int       `json:"stock,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// ListProductsInput defines the public product listing query.
type ListProductsInput struct {
	CityID     *uuid.UUID
	Category   string
	Condition  string
	MinPrice   *float64
	MaxPrice   *float64
	BusinessID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// --- Output DTOs ---

// ProductListOutput is one page of a product listing.
type ProductListOutput struct {
	Items []*entity.Product `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
