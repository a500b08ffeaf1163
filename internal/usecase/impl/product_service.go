package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
	now         func() time.Time
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct publishes a new product for the caller. The product inherits
// the caller's city and, when the caller owns a business, its business.
func (srv *productService) CreateProduct(ctx context.Context, userID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	user, err := srv.publisher(ctx, userID)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		UserID:      user.ID,
		CityID:      user.CityID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Condition:   input.Condition,
		Images:      input.Images,
		Stock:       input.Stock,
		Status:      entity.ListingStatusActive,
		ExpiresAt:   input.ExpiresAt,
	}
	if user.Business != nil {
		product.BusinessID = &user.Business.ID
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("userID", user.ID))

	return product, nil
}

// UpdateProduct applies partial changes to the caller's own product.
func (srv *productService) UpdateProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.Images != nil {
		product.Images = input.Images
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.ExpiresAt != nil {
		product.ExpiresAt = input.ExpiresAt
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct soft-deletes the caller's own product. The row survives so
// reviews and favorites keep valid references.
func (srv *productService) DeleteProduct(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	if _, err := srv.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}

	if err := srv.productRepo.SetStatus(ctx, productID, entity.ListingStatusInactive); err != nil {
		return errors.Wrap(err, "failed to deactivate product")
	}

	return nil
}

// GetProduct retrieves a live product and records one view.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !product.Live(srv.now()) {
		return nil, domainerrors.ErrProductNotFound
	}

	if err := srv.productRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record product view", slog.Any("productID", id), slog.Any("error", err))
	}

	return product, nil
}

// ListProducts retrieves the tiered public listing of live products.
func (srv *productService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		CityID:     input.CityID,
		Category:   input.Category,
		Condition:  input.Condition,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		BusinessID: input.BusinessID,
		Search:     input.Search,
		LiveOnly:   true,
		Now:        srv.now(),
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ListOwnProducts retrieves the caller's products, optionally narrowed to
// one status.
func (srv *productService) ListOwnProducts(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*usecase.ProductListOutput, error) {
	statusFilter, err := ownStatusFilter(status)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)

	items, total, err := srv.productRepo.List(ctx, repository.ProductFilter{
		UserID: &userID,
		Status: statusFilter,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own products")
	}

	return &usecase.ProductListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// publisher loads the caller and rejects roles that cannot publish listings.
func (srv *productService) publisher(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Role == entity.RoleCustomer {
		return nil, domainerrors.ErrForbidden.WrapMessage("customers cannot publish listings")
	}

	return user, nil
}

func (srv *productService) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if product.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return product, nil
}
