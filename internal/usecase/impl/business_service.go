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

const (
	defaultPageLimit = 20
	maxPageLimit     = 50
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	cityRepo     repository.CityRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	CityRepo     repository.CityRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		cityRepo:     params.CityRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness creates a business for a user who does not own one yet.
func (srv *businessService) CreateBusiness(ctx context.Context, userID uuid.UUID, input *usecase.CreateBusinessInput) (*entity.Business, error) {
	if _, err := srv.businessRepo.FindByUserID(ctx, userID); err == nil {
		return nil, domainerrors.ErrBusinessAlreadyExists
	} else if !errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, errors.Wrap(err, "failed to check existing business")
	}

	if _, err := srv.cityRepo.FindActiveByID(ctx, input.CityID); err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to verify city")
	}

	businessSlug, err := uniqueSlug(ctx, srv.businessRepo, input.Name)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate slug")
	}

	business := &entity.Business{
		UserID:           userID,
		Slug:             businessSlug,
		Name:             input.Name,
		Description:      input.Description,
		Category:         input.Category,
		Phone:            input.Phone,
		WhatsApp:         input.WhatsApp,
		Email:            input.Email,
		Website:          input.Website,
		Address:          input.Address,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		SubscriptionPlan: entity.PlanFree,
		AccountStatus:    entity.AccountStatusActive,
		CityID:           input.CityID,
	}

	if err := srv.businessRepo.Create(ctx, business); err != nil {
		if errors.Is(err, repository.ErrDuplicateBusiness) {
			return nil, domainerrors.ErrBusinessAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created", slog.Any("businessID", business.ID), slog.String("slug", business.Slug))

	return business, nil
}

// UpdateBusiness applies partial changes to the caller's own business.
func (srv *businessService) UpdateBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID, input *usecase.UpdateBusinessInput) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}
	if business.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	applyBusinessPatch(business, input)

	if err := srv.businessRepo.Update(ctx, business); err != nil {
		return nil, errors.Wrap(err, "failed to update business")
	}

	return business, nil
}

// DeleteBusiness removes the caller's own business permanently.
func (srv *businessService) DeleteBusiness(ctx context.Context, userID uuid.UUID, businessID uuid.UUID) error {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return domainerrors.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to find business")
	}
	if business.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.businessRepo.Delete(ctx, businessID); err != nil {
		return errors.Wrap(err, "failed to delete business")
	}

	srv.log(ctx).Info("Business deleted", slog.Any("businessID", businessID))

	return nil
}

// GetBusiness retrieves a business detail by ID and records one view.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*usecase.BusinessDetailOutput, error) {
	business, err := srv.businessRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return srv.buildDetail(ctx, business)
}

// GetBusinessBySlug retrieves a business detail by slug and records one view.
func (srv *businessService) GetBusinessBySlug(ctx context.Context, businessSlug string) (*usecase.BusinessDetailOutput, error) {
	business, err := srv.businessRepo.FindBySlug(ctx, businessSlug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	return srv.buildDetail(ctx, business)
}

func (srv *businessService) buildDetail(ctx context.Context, business *entity.Business) (*usecase.BusinessDetailOutput, error) {
	if business.AccountStatus != entity.AccountStatusActive {
		return nil, domainerrors.ErrBusinessNotFound
	}

	// View counting is best effort: a failed increment never fails the read.
	if err := srv.businessRepo.IncrementViewCount(ctx, business.ID); err != nil {
		srv.log(ctx).Warn("Failed to record business view", slog.Any("businessID", business.ID), slog.Any("error", err))
	}

	aggregate, err := srv.reviewRepo.AggregateBySubject(ctx, entity.SubjectRef{BusinessID: &business.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews")
	}

	return &usecase.BusinessDetailOutput{Business: business, Reviews: aggregate}, nil
}

// GetOwnBusiness retrieves the caller's business without recording a view.
func (srv *businessService) GetOwnBusiness(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by user")
	}

	return business, nil
}

// ListBusinesses retrieves the tiered public listing.
func (srv *businessService) ListBusinesses(ctx context.Context, input *usecase.ListBusinessesInput) (*usecase.BusinessListOutput, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	items, total, err := srv.businessRepo.List(ctx, repository.BusinessFilter{
		CityID:   input.CityID,
		Category: input.Category,
		Verified: input.Verified,
		Plan:     input.Plan,
		Search:   input.Search,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	return &usecase.BusinessListOutput{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func applyBusinessPatch(business *entity.Business, input *usecase.UpdateBusinessInput) {
	if input.Name != nil {
		business.Name = *input.Name
	}
	if input.Description != nil {
		business.Description = *input.Description
	}
	if input.Category != nil {
		business.Category = *input.Category
	}
	if input.Logo != nil {
		business.Logo = *input.Logo
	}
	if input.CoverImage != nil {
		business.CoverImage = *input.CoverImage
	}
	if input.Phone != nil {
		business.Phone = *input.Phone
	}
	if input.WhatsApp != nil {
		business.WhatsApp = *input.WhatsApp
	}
	if input.Email != nil {
		business.Email = *input.Email
	}
	if input.Website != nil {
		business.Website = *input.Website
	}
	if input.Address != nil {
		business.Address = *input.Address
	}
	if input.Latitude != nil {
		business.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		business.Longitude = *input.Longitude
	}
}

// normalizePage clamps pagination inputs to sane bounds.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}

// ownStatusFilter parses the optional status narrowing of the owner-facing
// listing endpoints. An empty status means no narrowing.
func ownStatusFilter(status string) (*entity.ListingStatus, error) {
	if status == "" {
		return nil, nil
	}

	parsed := entity.ListingStatus(status)
	if !parsed.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown listing status: " + status)
	}

	return &parsed, nil
}
