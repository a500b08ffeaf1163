package usecase

import (
	"context"

	"vitrina/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchUsecase defines the cross-type search operation.
type SearchUsecase interface {
	// Search runs one case-insensitive substring query across businesses,
	// products and services in a city, each group in tier order.
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
}

// SearchInput defines the global search query. Query must be at least two
// characters; Limit caps each result group.
type SearchInput struct {
	Query  string
	CityID *uuid.UUID
	Limit  int
}

// SearchOutput groups the matches by type.
type SearchOutput struct {
	Businesses []*entity.Business `json:"businesses"`
	Products   []*entity.Product  `json:"products"`
	Services   []*entity.Service  `json:"services"`
}
