package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minQueryLength     = 2
	defaultSearchLimit = 10
)

// searchService implements the SearchUsecase interface. One query fans out
// to the three listing repositories; each group comes back in tier order.
type searchService struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
	logger       *slog.Logger
	now          func() time.Time
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	ServiceRepo  repository.ServiceRepository
	Logger       *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	return &searchService{
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		serviceRepo:  params.ServiceRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search runs one case-insensitive substring query across businesses,
// products and services.
func (srv *searchService) Search(ctx context.Context, input *usecase.SearchInput) (*usecase.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("query must be at least 2 characters")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	businesses, _, err := srv.businessRepo.List(ctx, repository.BusinessFilter{
		CityID: input.CityID,
		Search: query,
		Page:   1,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search businesses")
	}

	products, _, err := srv.productRepo.List(ctx, repository.ProductFilter{
		CityID:   input.CityID,
		Search:   query,
		LiveOnly: true,
		Now:      srv.now(),
		Page:     1,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	active := entity.ListingStatusActive
	services, _, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{
		CityID: input.CityID,
		Search: query,
		Status: &active,
		Page:   1,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search services")
	}

	srv.log(ctx).Debug("Search executed",
		slog.String("query", query),
		slog.Int("businesses", len(businesses)),
		slog.Int("products", len(products)),
		slog.Int("services", len(services)),
	)

	return &usecase.SearchOutput{
		Businesses: businesses,
		Products:   products,
		Services:   services,
	}, nil
}
