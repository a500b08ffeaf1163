package impl

import (
	"context"
	"testing"
	"time"

	"vitrina/config"
	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"
	"vitrina/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionTestEnv struct {
	srv              *subscriptionService
	subscriptionRepo *mockSubscriptionRepo
	paymentRepo      *mockPaymentRepo
	businessRepo     *mockBusinessRepo
	gateway          *mockPaymentGateway
}

func newSubscriptionServiceForTest(t *testing.T, now time.Time) *subscriptionTestEnv {
	t.Helper()

	env := &subscriptionTestEnv{
		subscriptionRepo: &mockSubscriptionRepo{},
		paymentRepo:      &mockPaymentRepo{},
		businessRepo:     &mockBusinessRepo{},
		gateway:          &mockPaymentGateway{},
	}

	cfg := &config.Config{}
	cfg.Subscription = config.SubscriptionConfig{MinAmount: 1500, MaxAmount: 2500, PeriodDays: 30}

	env.srv = NewSubscriptionService(SubscriptionServiceParams{
		TxManager: &stubTxManager{factory: &stubRepoFactory{
			subscriptionRepo: env.subscriptionRepo,
			paymentRepo:      env.paymentRepo,
			businessRepo:     env.businessRepo,
		}},
		SubscriptionRepo: env.subscriptionRepo,
		PaymentRepo:      env.paymentRepo,
		BusinessRepo:     env.businessRepo,
		Gateway:          env.gateway,
		Config:           cfg,
		Logger:           testLogger(),
	}).(*subscriptionService)
	env.srv.now = func() time.Time { return now }

	return env
}

func TestSubscriptionService_Subscribe(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	business := &entity.Business{ID: uuid.New(), UserID: userID, SubscriptionPlan: entity.PlanFree}

	t.Run("amount outside the accepted range", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)

		for _, amount := range []float64{1499.99, 2500.01, 0} {
			_, err := env.srv.Subscribe(context.Background(), userID, &usecase.SubscribeInput{
				Amount:        amount,
				PaymentMethod: "CASH",
			})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAmount)
		}
	})

	t.Run("cash activates immediately and upgrades the business", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
		env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).
			Return(nil, repository.ErrSubscriptionNotFound)
		env.subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil)
		env.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
		env.businessRepo.On("UpdateSubscriptionState", mock.Anything, business.ID,
			entity.PlanPartner, entity.SubscriptionActive, mock.Anything, mock.Anything).Return(nil)

		output, err := env.srv.Subscribe(context.Background(), userID, &usecase.SubscribeInput{
			Amount:        2000,
			PaymentMethod: "CASH",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.SubscriptionActive, output.Subscription.Status)
		assert.Equal(t, now.AddDate(0, 0, 30), output.Subscription.EndDate)
		assert.Empty(t, output.CheckoutURL)
		env.gateway.AssertNotCalled(t, "CreatePreference", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		env.businessRepo.AssertExpectations(t)
	})

	t.Run("mercadopago stays pending and returns the checkout url", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
		env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).
			Return(nil, repository.ErrSubscriptionNotFound)
		env.subscriptionRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Subscription")).Return(nil)
		env.paymentRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Payment")).Return(nil)
		env.gateway.On("CreatePreference", mock.Anything, mock.Anything, 2000.0, mock.Anything).
			Return(&service.PaymentPreference{ExternalID: "pref-123", CheckoutURL: "https://mp.example/checkout"}, nil)
		env.paymentRepo.On("SetExternalID", mock.Anything, mock.Anything, "pref-123").Return(nil)

		output, err := env.srv.Subscribe(context.Background(), userID, &usecase.SubscribeInput{
			Amount:        2000,
			PaymentMethod: "MERCADOPAGO",
		})
		require.NoError(t, err)

		assert.Equal(t, entity.SubscriptionPaymentPending, output.Subscription.Status)
		assert.Equal(t, "https://mp.example/checkout", output.CheckoutURL)
		env.businessRepo.AssertNotCalled(t, "UpdateSubscriptionState",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second running subscription is rejected", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
		env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).
			Return(&entity.Subscription{ID: uuid.New(), Status: entity.SubscriptionActive}, nil)

		_, err := env.srv.Subscribe(context.Background(), userID, &usecase.SubscribeInput{
			Amount:        2000,
			PaymentMethod: "CASH",
		})
		assert.ErrorIs(t, err, domainerrors.ErrSubscriptionExists)
	})

	t.Run("user without a business", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		env.businessRepo.On("FindByUserID", mock.Anything, userID).
			Return(nil, repository.ErrBusinessNotFound)

		_, err := env.srv.Subscribe(context.Background(), userID, &usecase.SubscribeInput{
			Amount:        2000,
			PaymentMethod: "CASH",
		})
		assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	})
}

func TestSubscriptionService_HandleWebhook(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("approved payment activates the subscription", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		payment := &entity.Payment{ID: uuid.New(), SubscriptionID: uuid.New(), ExternalID: "pay-1"}
		subscription := &entity.Subscription{
			ID:         payment.SubscriptionID,
			BusinessID: uuid.New(),
			Status:     entity.SubscriptionPaymentPending,
			StartDate:  now,
			EndDate:    now.AddDate(0, 0, 30),
		}

		env.paymentRepo.On("FindByExternalID", mock.Anything, "pay-1").Return(payment, nil)
		env.subscriptionRepo.On("FindByID", mock.Anything, subscription.ID).Return(subscription, nil)
		env.gateway.On("LookupPayment", mock.Anything, "pay-1").
			Return(&service.PaymentNotification{ExternalID: "pay-1", Approved: true}, nil)
		env.paymentRepo.On("UpdateStatus", mock.Anything, payment.ID, entity.PaymentCompleted).Return(nil)
		env.subscriptionRepo.On("UpdateStatus", mock.Anything, subscription.ID, entity.SubscriptionActive).Return(nil)
		env.businessRepo.On("UpdateSubscriptionState", mock.Anything, subscription.BusinessID,
			entity.PlanPartner, entity.SubscriptionActive, &subscription.StartDate, &subscription.EndDate).Return(nil)

		err := env.srv.HandleWebhook(context.Background(), &usecase.WebhookInput{Type: "payment", PaymentRef: "pay-1"})
		require.NoError(t, err)
		env.businessRepo.AssertExpectations(t)
	})

	t.Run("replay for an active subscription is a no-op", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		payment := &entity.Payment{ID: uuid.New(), SubscriptionID: uuid.New(), ExternalID: "pay-1"}
		env.paymentRepo.On("FindByExternalID", mock.Anything, "pay-1").Return(payment, nil)
		env.subscriptionRepo.On("FindByID", mock.Anything, payment.SubscriptionID).
			Return(&entity.Subscription{ID: payment.SubscriptionID, Status: entity.SubscriptionActive}, nil)

		err := env.srv.HandleWebhook(context.Background(), &usecase.WebhookInput{Type: "payment", PaymentRef: "pay-1"})
		require.NoError(t, err)
		env.gateway.AssertNotCalled(t, "LookupPayment", mock.Anything, mock.Anything)
		env.paymentRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown reference is acknowledged", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		env.paymentRepo.On("FindByExternalID", mock.Anything, "ghost").
			Return(nil, repository.ErrPaymentNotFound)

		assert.NoError(t, env.srv.HandleWebhook(context.Background(), &usecase.WebhookInput{Type: "payment", PaymentRef: "ghost"}))
	})

	t.Run("non payment notifications are ignored", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)

		assert.NoError(t, env.srv.HandleWebhook(context.Background(), &usecase.WebhookInput{Type: "merchant_order", PaymentRef: "x"}))
		env.paymentRepo.AssertNotCalled(t, "FindByExternalID", mock.Anything, mock.Anything)
	})

	t.Run("rejected payment is marked failed", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		payment := &entity.Payment{ID: uuid.New(), SubscriptionID: uuid.New(), ExternalID: "pay-2"}
		env.paymentRepo.On("FindByExternalID", mock.Anything, "pay-2").Return(payment, nil)
		env.subscriptionRepo.On("FindByID", mock.Anything, payment.SubscriptionID).
			Return(&entity.Subscription{ID: payment.SubscriptionID, Status: entity.SubscriptionPaymentPending}, nil)
		env.gateway.On("LookupPayment", mock.Anything, "pay-2").
			Return(&service.PaymentNotification{ExternalID: "pay-2", Approved: false}, nil)
		env.paymentRepo.On("UpdateStatus", mock.Anything, payment.ID, entity.PaymentFailed).Return(nil)

		require.NoError(t, env.srv.HandleWebhook(context.Background(), &usecase.WebhookInput{Type: "payment", PaymentRef: "pay-2"}))
		env.subscriptionRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSubscriptionService_Cancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	endDate := now.AddDate(0, 0, 20)
	business := &entity.Business{
		ID:                  uuid.New(),
		UserID:              userID,
		SubscriptionPlan:    entity.PlanPartner,
		SubscriptionEndDate: &endDate,
	}

	env := newSubscriptionServiceForTest(t, now)
	subscription := &entity.Subscription{ID: uuid.New(), BusinessID: business.ID, Status: entity.SubscriptionActive}
	env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
	env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).Return(subscription, nil)
	env.subscriptionRepo.On("MarkCancelled", mock.Anything, subscription.ID).Return(nil)
	env.businessRepo.On("UpdateSubscriptionState", mock.Anything, business.ID,
		entity.PlanPartner, entity.SubscriptionCancelled, mock.Anything, &endDate).Return(nil)

	require.NoError(t, env.srv.Cancel(context.Background(), userID))
	env.businessRepo.AssertExpectations(t)
}

func TestSubscriptionService_ExpireDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	env := newSubscriptionServiceForTest(t, now)

	due := []*entity.Subscription{
		{ID: uuid.New(), BusinessID: uuid.New(), Status: entity.SubscriptionActive},
		{ID: uuid.New(), BusinessID: uuid.New(), Status: entity.SubscriptionActive},
	}
	env.subscriptionRepo.On("ListActiveDue", mock.Anything, now).Return(due, nil)
	for _, subscription := range due {
		env.subscriptionRepo.On("UpdateStatus", mock.Anything, subscription.ID, entity.SubscriptionExpired).Return(nil)
		env.businessRepo.On("UpdateSubscriptionState", mock.Anything, subscription.BusinessID,
			entity.PlanFree, entity.SubscriptionExpired, (*time.Time)(nil), (*time.Time)(nil)).Return(nil)
	}

	expired, err := env.srv.ExpireDue(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	env.businessRepo.AssertExpectations(t)
}

func TestSubscriptionService_GetCurrent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("free business gets its plan snapshot without a subscription", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		business := &entity.Business{ID: uuid.New(), UserID: userID, SubscriptionPlan: entity.PlanFree}
		env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
		env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).
			Return(nil, repository.ErrSubscriptionNotFound)

		output, err := env.srv.GetCurrent(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlanFree, output.Plan)
		assert.Nil(t, output.Subscription)
	})

	t.Run("partner business includes the running subscription", func(t *testing.T) {
		env := newSubscriptionServiceForTest(t, now)
		startDate := now.AddDate(0, 0, -10)
		endDate := now.AddDate(0, 0, 20)
		business := &entity.Business{
			ID:                    uuid.New(),
			UserID:                userID,
			SubscriptionPlan:      entity.PlanPartner,
			SubscriptionStatus:    entity.SubscriptionActive,
			SubscriptionStartDate: &startDate,
			SubscriptionEndDate:   &endDate,
		}
		subscription := &entity.Subscription{ID: uuid.New(), BusinessID: business.ID, Status: entity.SubscriptionActive}
		env.businessRepo.On("FindByUserID", mock.Anything, userID).Return(business, nil)
		env.subscriptionRepo.On("FindActiveByBusiness", mock.Anything, business.ID).Return(subscription, nil)

		output, err := env.srv.GetCurrent(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlanPartner, output.Plan)
		assert.Equal(t, entity.SubscriptionActive, output.Status)
		assert.Equal(t, &endDate, output.EndDate)
		assert.Equal(t, subscription, output.Subscription)
	})
}
