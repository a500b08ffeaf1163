package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

// subscriptionService implements the SubscriptionUsecase interface.
//
// The business row carries denormalized subscription columns so listing
// queries never join the subscriptions table; every state transition here
// rewrites them in the same transaction as the subscription row.
type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	paymentRepo      repository.PaymentRepository
	businessRepo     repository.BusinessRepository
	gateway          service.PaymentGateway
	cfg              config.SubscriptionConfig
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService,
// injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	PaymentRepo      repository.PaymentRepository
	BusinessRepo     repository.BusinessRepository
	Gateway          service.PaymentGateway
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		paymentRepo:      params.PaymentRepo,
		businessRepo:     params.BusinessRepo,
		gateway:          params.Gateway,
		cfg:              params.Config.Subscription,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe starts a PARTNER subscription for the caller's business.
func (srv *subscriptionService) Subscribe(ctx context.Context, userID uuid.UUID, input *usecase.SubscribeInput) (*usecase.SubscribeOutput, error) {
	if input.Amount < srv.cfg.MinAmount || input.Amount > srv.cfg.MaxAmount {
		return nil, domainerrors.ErrInvalidAmount
	}

	method := entity.PaymentMethod(input.PaymentMethod)
	switch method {
	case entity.PaymentMethodMercadoPago, entity.PaymentMethodBankTransfer, entity.PaymentMethodCash:
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown payment method: " + input.PaymentMethod)
	}

	business, err := srv.ownBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.subscriptionRepo.FindActiveByBusiness(ctx, business.ID); err == nil {
		return nil, domainerrors.ErrSubscriptionExists
	} else if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to check active subscription")
	}

	now := srv.now()
	subscription := &entity.Subscription{
		BusinessID:    business.ID,
		Plan:          entity.PlanPartner,
		Amount:        input.Amount,
		PaymentMethod: method,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, srv.cfg.PeriodDays),
		AutoRenew:     true,
	}
	payment := &entity.Payment{
		Amount:        input.Amount,
		PaymentMethod: method,
	}

	if method.RequiresGatewayConfirmation() {
		subscription.Status = entity.SubscriptionPaymentPending
		payment.Status = entity.PaymentPending
	} else {
		subscription.Status = entity.SubscriptionActive
		payment.Status = entity.PaymentCompleted
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewSubscriptionRepository().Create(ctx, subscription); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}

		payment.SubscriptionID = subscription.ID
		if err := repos.NewPaymentRepository().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		if subscription.Status == entity.SubscriptionActive {
			if err := repos.NewBusinessRepository().UpdateSubscriptionState(ctx, business.ID,
				entity.PlanPartner, entity.SubscriptionActive,
				&subscription.StartDate, &subscription.EndDate); err != nil {
				return errors.Wrap(err, "failed to upgrade business")
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	output := &usecase.SubscribeOutput{Subscription: subscription}

	if method.RequiresGatewayConfirmation() {
		preference, err := srv.gateway.CreatePreference(ctx, subscription.ID, input.Amount,
			fmt.Sprintf("Suscripción PARTNER (%d días)", srv.cfg.PeriodDays))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create payment preference")
		}

		if err := srv.paymentRepo.SetExternalID(ctx, payment.ID, preference.ExternalID); err != nil {
			return nil, errors.Wrap(err, "failed to store payment reference")
		}
		payment.ExternalID = preference.ExternalID
		output.CheckoutURL = preference.CheckoutURL
	}

	srv.log(ctx).Info("Subscription started",
		slog.Any("subscriptionID", subscription.ID),
		slog.Any("businessID", business.ID),
		slog.String("status", subscription.Status.String()),
		slog.String("method", string(method)),
	)

	return output, nil
}

// Cancel opts the caller's business out of renewal. The PARTNER benefits
// persist until the period's end date; the nightly sweep downgrades later.
func (srv *subscriptionService) Cancel(ctx context.Context, userID uuid.UUID) error {
	business, err := srv.ownBusiness(ctx, userID)
	if err != nil {
		return err
	}

	subscription, err := srv.subscriptionRepo.FindActiveByBusiness(ctx, business.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to find active subscription")
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewSubscriptionRepository().MarkCancelled(ctx, subscription.ID); err != nil {
			return errors.Wrap(err, "failed to cancel subscription")
		}

		return errors.Wrap(repos.NewBusinessRepository().UpdateSubscriptionState(ctx, business.ID,
			business.SubscriptionPlan, entity.SubscriptionCancelled,
			business.SubscriptionStartDate, business.SubscriptionEndDate),
			"failed to mark business cancelled")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Subscription cancelled",
		slog.Any("subscriptionID", subscription.ID),
		slog.Any("businessID", business.ID),
	)

	return nil
}

// GetCurrent retrieves the caller's plan snapshot together with the running
// subscription. A FREE business has no running subscription and gets a
// snapshot with a nil one.
func (srv *subscriptionService) GetCurrent(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionStatusOutput, error) {
	business, err := srv.ownBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	output := &usecase.SubscriptionStatusOutput{
		Plan:      business.SubscriptionPlan,
		Status:    business.SubscriptionStatus,
		StartDate: business.SubscriptionStartDate,
		EndDate:   business.SubscriptionEndDate,
	}

	subscription, err := srv.subscriptionRepo.FindActiveByBusiness(ctx, business.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return output, nil
		}

		return nil, errors.Wrap(err, "failed to find active subscription")
	}

	output.Subscription = subscription

	return output, nil
}

// History retrieves all of the caller's subscriptions newest first.
func (srv *subscriptionService) History(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	business, err := srv.ownBusiness(ctx, userID)
	if err != nil {
		return nil, err
	}

	subscriptions, err := srv.subscriptionRepo.ListByBusiness(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

// HandleWebhook processes a payment gateway notification. Unknown references
// and replays for already-active subscriptions are acknowledged without side
// effects so the gateway stops retrying.
func (srv *subscriptionService) HandleWebhook(ctx context.Context, input *usecase.WebhookInput) error {
	if input.Type != "payment" || input.PaymentRef == "" {
		return nil
	}

	payment, err := srv.paymentRepo.FindByExternalID(ctx, input.PaymentRef)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			srv.log(ctx).Warn("Webhook for unknown payment", slog.String("paymentRef", input.PaymentRef))

			return nil
		}

		return errors.Wrap(err, "failed to find payment")
	}

	subscription, err := srv.subscriptionRepo.FindByID(ctx, payment.SubscriptionID)
	if err != nil {
		return errors.Wrap(err, "failed to find subscription")
	}
	if subscription.Status != entity.SubscriptionPaymentPending {
		srv.log(ctx).Info("Webhook replay ignored", slog.Any("subscriptionID", subscription.ID))

		return nil
	}

	notification, err := srv.gateway.LookupPayment(ctx, input.PaymentRef)
	if err != nil {
		return errors.Wrap(err, "failed to look up payment at gateway")
	}

	if !notification.Approved {
		if err := srv.paymentRepo.UpdateStatus(ctx, payment.ID, entity.PaymentFailed); err != nil {
			return errors.Wrap(err, "failed to mark payment failed")
		}

		return nil
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewPaymentRepository().UpdateStatus(ctx, payment.ID, entity.PaymentCompleted); err != nil {
			return errors.Wrap(err, "failed to complete payment")
		}

		if err := repos.NewSubscriptionRepository().UpdateStatus(ctx, subscription.ID, entity.SubscriptionActive); err != nil {
			return errors.Wrap(err, "failed to activate subscription")
		}

		return errors.Wrap(repos.NewBusinessRepository().UpdateSubscriptionState(ctx, subscription.BusinessID,
			entity.PlanPartner, entity.SubscriptionActive,
			&subscription.StartDate, &subscription.EndDate),
			"failed to upgrade business")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Subscription activated via webhook",
		slog.Any("subscriptionID", subscription.ID),
		slog.String("paymentRef", input.PaymentRef),
	)

	return nil
}

// ExpireDue downgrades businesses whose ACTIVE subscription has ended.
func (srv *subscriptionService) ExpireDue(ctx context.Context, now time.Time) (int, error) {
	due, err := srv.subscriptionRepo.ListActiveDue(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list due subscriptions")
	}

	expired := 0
	for _, subscription := range due {
		err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.NewSubscriptionRepository().UpdateStatus(ctx, subscription.ID, entity.SubscriptionExpired); err != nil {
				return errors.Wrap(err, "failed to expire subscription")
			}

			return errors.Wrap(repos.NewBusinessRepository().UpdateSubscriptionState(ctx, subscription.BusinessID,
				entity.PlanFree, entity.SubscriptionExpired, nil, nil),
				"failed to downgrade business")
		})
		if err != nil {
			srv.log(ctx).Error("Failed to expire subscription",
				slog.Any("subscriptionID", subscription.ID),
				slog.Any("error", err),
			)

			continue
		}
		expired++
	}

	if expired > 0 {
		srv.log(ctx).Info("Subscriptions expired", slog.Int("count", expired))
	}

	return expired, nil
}

func (srv *subscriptionService) ownBusiness(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return business, nil
}
