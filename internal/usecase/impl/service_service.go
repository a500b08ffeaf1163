package impl

import (
	"context"
	"log/slog"

	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// serviceService implements the ServiceUsecase interface.
type serviceService struct {
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// ServiceServiceParams holds dependencies for ServiceService, injected by Fx.
type ServiceServiceParams struct {
	fx.In

	ServiceRepo repository.ServiceRepository
	UserRepo    repository.UserRepository
	Logger      *slog.Logger
}

// NewServiceService is the constructor for serviceService.
func NewServiceService(params ServiceServiceParams) usecase.ServiceUsecase {
	return &serviceService{
		serviceRepo: params.ServiceRepo,
		userRepo:    params.UserRepo,
		logger:      params.Logger,
	}
}

func (srv *serviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateService publishes a new service offering for the caller.
func (srv *serviceService) CreateService(ctx context.Context, userID uuid.UUID, input *usecase.CreateServiceInput) (*entity.Service, error) {
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

	offering := &entity.Service{
		UserID:       user.ID,
		CityID:       user.CityID,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		PriceType:    input.PriceType,
		Price:        input.Price,
		PriceUnit:    input.PriceUnit,
		Images:       input.Images,
		CoverageArea: input.CoverageArea,
		Status:       entity.ListingStatusActive,
	}
	if user.Business != nil {
		offering.BusinessID = &user.Business.ID
	}

	if err := srv.serviceRepo.Create(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.log(ctx).Info("Service created", slog.Any("serviceID", offering.ID), slog.Any("userID", user.ID))

	return offering, nil
}

// UpdateService applies partial changes to the caller's own service.
func (srv *serviceService) UpdateService(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID, input *usecase.UpdateServiceInput) (*entity.Service, error) {
	offering, err := srv.ownedService(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		offering.Name = *input.Name
	}
	if input.Description != nil {
		offering.Description = *input.Description
	}
	if input.Category != nil {
		offering.Category = *input.Category
	}
	if input.PriceType != nil {
		offering.PriceType = *input.PriceType
	}
	if input.Price != nil {
		offering.Price = *input.Price
	}
	if input.PriceUnit != nil {
		offering.PriceUnit = *input.PriceUnit
	}
	if input.Images != nil {
		offering.Images = input.Images
	}
	if input.CoverageArea != nil {
		offering.CoverageArea = *input.CoverageArea
	}

	if err := srv.serviceRepo.Update(ctx, offering); err != nil {
		return nil, errors.Wrap(err, "failed to update service")
	}

	return offering, nil
}

// DeleteService soft-deletes the caller's own service.
func (srv *serviceService) DeleteService(ctx context.Context, userID uuid.UUID, serviceID uuid.UUID) error {
	if _, err := srv.ownedService(ctx, userID, serviceID); err != nil {
		return err
	}

	if err := srv.serviceRepo.SetStatus(ctx, serviceID, entity.ListingStatusInactive); err != nil {
		return errors.Wrap(err, "failed to deactivate service")
	}

	return nil
}

// GetService retrieves an active service and records one view.
func (srv *serviceService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	offering, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	if offering.Status != entity.ListingStatusActive {
		return nil, domainerrors.ErrServiceNotFound
	}

	if err := srv.serviceRepo.IncrementViewCount(ctx, id); err != nil {
		srv.log(ctx).Warn("Failed to record service view", slog.Any("serviceID", id), slog.Any("error", err))
	}

	return offering, nil
}

// ListServices retrieves the tiered public listing of active services.
func (srv *serviceService) ListServices(ctx context.Context, input *usecase.ListServicesInput) (*usecase.ServiceListOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)
	active := entity.ListingStatusActive

	items, total, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{
		CityID:     input.CityID,
		Category:   input.Category,
		PriceType:  input.PriceType,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		BusinessID: input.BusinessID,
		Search:     input.Search,
		Status:     &active,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return &usecase.ServiceListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

// ListOwnServices retrieves the caller's services, optionally narrowed to
// one status.
func (srv *serviceService) ListOwnServices(ctx context.Context, userID uuid.UUID, status string, page, limit int) (*usecase.ServiceListOutput, error) {
	statusFilter, err := ownStatusFilter(status)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)

	items, total, err := srv.serviceRepo.List(ctx, repository.ServiceFilter{
		UserID: &userID,
		Status: statusFilter,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own services")
	}

	return &usecase.ServiceListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (srv *serviceService) ownedService(ctx context.Context, userID, serviceID uuid.UUID) (*entity.Service, error) {
	offering, err := srv.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}
	if offering.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return offering, nil
}
