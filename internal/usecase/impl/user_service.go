// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"vitrina/config"
	deliverycontext "vitrina/internal/delivery/context"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	cityRepo     repository.CityRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	config       *config.Config
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	BusinessRepo repository.BusinessRepository
	CityRepo     repository.CityRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		businessRepo: params.BusinessRepo,
		cityRepo:     params.CityRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		config:       params.Config,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates account creation. Roles that own a business get
// their business profile created in the same transaction, so a failed slug
// or profile insert leaves no orphan account behind.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
	if role.OwnsBusiness() && input.BusinessName == "" {
		return nil, domainerrors.ErrBusinessRequired
	}

	city, err := srv.cityRepo.FindActiveByID(ctx, input.CityID)
	if err != nil {
		if errors.Is(err, repository.ErrCityNotFound) {
			return nil, domainerrors.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to verify city")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	srv.log(ctx).Info("Starting registration", slog.String("role", input.Role), slog.String("email", input.Email))

	user := &entity.User{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		WhatsApp:     input.WhatsApp,
		Role:         role,
		Status:       entity.UserStatusActive,
		CityID:       city.ID,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		businessRepo := repoFactory.NewBusinessRepository()

		if _, err := userRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email")
		}

		if err := userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create user")
		}

		if !role.OwnsBusiness() {
			return nil
		}

		businessSlug, err := uniqueSlug(ctx, businessRepo, input.BusinessName)
		if err != nil {
			return errors.Wrap(err, "failed to generate business slug")
		}

		business := &entity.Business{
			UserID:           user.ID,
			Slug:             businessSlug,
			Name:             input.BusinessName,
			Description:      input.BusinessDescription,
			Category:         input.BusinessCategory,
			Address:          input.BusinessAddress,
			Phone:            input.BusinessPhone,
			SubscriptionPlan: entity.PlanFree,
			AccountStatus:    entity.AccountStatusActive,
			CityID:           city.ID,
		}
		if err := businessRepo.Create(ctx, business); err != nil {
			return errors.Wrap(err, "failed to create business")
		}
		user.Business = business

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	return srv.issueAuth(user)
}

// Login verifies credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is suspended")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return srv.issueAuth(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The user
// is re-read so a role, city, or suspension change since login takes effect.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	userID, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Status != entity.UserStatusActive {
		return nil, domainerrors.ErrForbidden.WrapMessage("account is suspended")
	}

	return srv.issueAuth(user)
}

// GetProfile retrieves the authenticated user's profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies partial changes to the user's own profile.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.WhatsApp != nil {
		user.WhatsApp = *input.WhatsApp
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) issueAuth(user *entity.User) (*usecase.AuthOutput, error) {
	cityID := user.CityID
	var businessID *uuid.UUID
	if user.Business != nil {
		businessID = &user.Business.ID
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String(), &cityID, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	refreshToken, err := srv.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate refresh token")
	}

	return &usecase.AuthOutput{User: user, Token: token, RefreshToken: refreshToken}, nil
}
