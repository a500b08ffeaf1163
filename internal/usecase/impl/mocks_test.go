package impl

import (
	"context"
	"time"

	"vitrina/internal/domain/entity"
	"vitrina/internal/domain/repository"
	"vitrina/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-written testify mocks for the repository and domain service
// interfaces the usecase tests exercise.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

type mockCityRepo struct{ mock.Mock }

func (m *mockCityRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	args := m.Called(ctx, id)
	if city, ok := args.Get(0).(*entity.City); ok {
		return city, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCityRepo) FindActiveByID(ctx context.Context, id uuid.UUID) (*entity.City, error) {
	args := m.Called(ctx, id)
	if city, ok := args.Get(0).(*entity.City); ok {
		return city, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockCityRepo) ListActive(ctx context.Context, search string) ([]*entity.City, error) {
	args := m.Called(ctx, search)
	if cities, ok := args.Get(0).([]*entity.City); ok {
		return cities, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockBusinessRepo struct{ mock.Mock }

func (m *mockBusinessRepo) Create(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *mockBusinessRepo) Update(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *mockBusinessRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBusinessRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if business, ok := args.Get(0).(*entity.Business); ok {
		return business, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBusinessRepo) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	args := m.Called(ctx, slug)
	if business, ok := args.Get(0).(*entity.Business); ok {
		return business, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBusinessRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, userID)
	if business, ok := args.Get(0).(*entity.Business); ok {
		return business, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBusinessRepo) List(ctx context.Context, filter repository.BusinessFilter) ([]*entity.Business, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*entity.Business)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockBusinessRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)

	return args.Bool(0), args.Error(1)
}

func (m *mockBusinessRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBusinessRepo) UpdateSubscriptionState(ctx context.Context, id uuid.UUID, plan entity.Plan, status entity.SubscriptionStatus, startDate, endDate *time.Time) error {
	return m.Called(ctx, id, plan, status, startDate, endDate).Error(0)
}

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*entity.Product)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockProductRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockServiceRepo struct{ mock.Mock }

func (m *mockServiceRepo) Create(ctx context.Context, svc *entity.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) Update(ctx context.Context, svc *entity.Service) error {
	return m.Called(ctx, svc).Error(0)
}

func (m *mockServiceRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	args := m.Called(ctx, id)
	if svc, ok := args.Get(0).(*entity.Service); ok {
		return svc, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, int64, error) {
	args := m.Called(ctx, filter)
	items, _ := args.Get(0).([]*entity.Service)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockServiceRepo) SetStatus(ctx context.Context, id uuid.UUID, status entity.ListingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockServiceRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockStoryRepo struct{ mock.Mock }

func (m *mockStoryRepo) Create(ctx context.Context, story *entity.Story) error {
	return m.Called(ctx, story).Error(0)
}

func (m *mockStoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	args := m.Called(ctx, id)
	if story, ok := args.Get(0).(*entity.Story); ok {
		return story, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockStoryRepo) ListActive(ctx context.Context, cityID *uuid.UUID, now time.Time) ([]*entity.Story, error) {
	args := m.Called(ctx, cityID, now)
	if stories, ok := args.Get(0).([]*entity.Story); ok {
		return stories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockStoryRepo) ListByUser(ctx context.Context, userID uuid.UUID, includeExpired bool, now time.Time) ([]*entity.Story, error) {
	args := m.Called(ctx, userID, includeExpired, now)
	if stories, ok := args.Get(0).([]*entity.Story); ok {
		return stories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockStoryRepo) CountCreatedBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	args := m.Called(ctx, userID, from, to)

	return args.Get(0).(int64), args.Error(1)
}

func (m *mockStoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStoryRepo) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStoryRepo) IncrementClickCount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockStoryRepo) DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)

	return args.Get(0).(int64), args.Error(1)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReviewRepo) FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Review, error) {
	args := m.Called(ctx, userID, subject)
	if review, ok := args.Get(0).(*entity.Review); ok {
		return review, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReviewRepo) ListBySubject(ctx context.Context, subject entity.SubjectRef, page, limit int) ([]*entity.Review, int64, error) {
	args := m.Called(ctx, subject, page, limit)
	items, _ := args.Get(0).([]*entity.Review)

	return items, args.Get(1).(int64), args.Error(2)
}

func (m *mockReviewRepo) AggregateBySubject(ctx context.Context, subject entity.SubjectRef) (*repository.ReviewAggregate, error) {
	args := m.Called(ctx, subject)
	if aggregate, ok := args.Get(0).(*repository.ReviewAggregate); ok {
		return aggregate, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockFavoriteRepo struct{ mock.Mock }

func (m *mockFavoriteRepo) Create(ctx context.Context, favorite *entity.Favorite) error {
	return m.Called(ctx, favorite).Error(0)
}

func (m *mockFavoriteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFavoriteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Favorite, error) {
	args := m.Called(ctx, id)
	if favorite, ok := args.Get(0).(*entity.Favorite); ok {
		return favorite, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockFavoriteRepo) FindByUserAndSubject(ctx context.Context, userID uuid.UUID, subject entity.SubjectRef) (*entity.Favorite, error) {
	args := m.Called(ctx, userID, subject)
	if favorite, ok := args.Get(0).(*entity.Favorite); ok {
		return favorite, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockFavoriteRepo) ListByUser(ctx context.Context, userID uuid.UUID, subjectType string, page, limit int) ([]*entity.Favorite, int64, error) {
	args := m.Called(ctx, userID, subjectType, page, limit)
	items, _ := args.Get(0).([]*entity.Favorite)

	return items, args.Get(1).(int64), args.Error(2)
}

type mockSubscriptionRepo struct{ mock.Mock }

func (m *mockSubscriptionRepo) Create(ctx context.Context, subscription *entity.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, subscription *entity.Subscription) error {
	return m.Called(ctx, subscription).Error(0)
}

func (m *mockSubscriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, id)
	if subscription, ok := args.Get(0).(*entity.Subscription); ok {
		return subscription, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepo) FindActiveByBusiness(ctx context.Context, businessID uuid.UUID) (*entity.Subscription, error) {
	args := m.Called(ctx, businessID)
	if subscription, ok := args.Get(0).(*entity.Subscription); ok {
		return subscription, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Subscription, error) {
	args := m.Called(ctx, businessID)
	if subscriptions, ok := args.Get(0).([]*entity.Subscription); ok {
		return subscriptions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepo) ListActiveDue(ctx context.Context, now time.Time) ([]*entity.Subscription, error) {
	args := m.Called(ctx, now)
	if subscriptions, ok := args.Get(0).([]*entity.Subscription); ok {
		return subscriptions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSubscriptionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SubscriptionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockSubscriptionRepo) MarkCancelled(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockPaymentRepo struct{ mock.Mock }

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	args := m.Called(ctx, id)
	if payment, ok := args.Get(0).(*entity.Payment); ok {
		return payment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockPaymentRepo) FindByExternalID(ctx context.Context, externalID string) (*entity.Payment, error) {
	args := m.Called(ctx, externalID)
	if payment, ok := args.Get(0).(*entity.Payment); ok {
		return payment, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockPaymentRepo) SetExternalID(ctx context.Context, id uuid.UUID, externalID string) error {
	return m.Called(ctx, id, externalID).Error(0)
}

func (m *mockPaymentRepo) ListBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.Payment, error) {
	args := m.Called(ctx, subscriptionID)
	if payments, ok := args.Get(0).([]*entity.Payment); ok {
		return payments, args.Error(1)
	}

	return nil, args.Error(1)
}

// stubTxManager runs the transactional function directly against the test's
// mocks, without any real transaction.
type stubTxManager struct {
	factory *stubRepoFactory
	err     error
}

func (m *stubTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.err != nil {
		return m.err
	}

	return fn(m.factory)
}

type stubRepoFactory struct {
	userRepo         repository.UserRepository
	businessRepo     repository.BusinessRepository
	subscriptionRepo repository.SubscriptionRepository
	paymentRepo      repository.PaymentRepository
}

func (f *stubRepoFactory) NewUserRepository() repository.UserRepository { return f.userRepo }

func (f *stubRepoFactory) NewBusinessRepository() repository.BusinessRepository {
	return f.businessRepo
}

func (f *stubRepoFactory) NewSubscriptionRepository() repository.SubscriptionRepository {
	return f.subscriptionRepo
}

func (f *stubRepoFactory) NewPaymentRepository() repository.PaymentRepository {
	return f.paymentRepo
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type mockTokenService struct{ mock.Mock }

func (m *mockTokenService) GenerateToken(userID uuid.UUID, role string, cityID, businessID *uuid.UUID) (string, error) {
	args := m.Called(userID, role, cityID, businessID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateRefreshToken(tokenString string) (uuid.UUID, error) {
	args := m.Called(tokenString)

	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockPaymentGateway struct{ mock.Mock }

func (m *mockPaymentGateway) CreatePreference(ctx context.Context, subscriptionID uuid.UUID, amount float64, description string) (*service.PaymentPreference, error) {
	args := m.Called(ctx, subscriptionID, amount, description)
	if preference, ok := args.Get(0).(*service.PaymentPreference); ok {
		return preference, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockPaymentGateway) LookupPayment(ctx context.Context, paymentRef string) (*service.PaymentNotification, error) {
	args := m.Called(ctx, paymentRef)
	if notification, ok := args.Get(0).(*service.PaymentNotification); ok {
		return notification, args.Error(1)
	}

	return nil, args.Error(1)
}
