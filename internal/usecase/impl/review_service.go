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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	subjects   subjectResolver
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo   repository.ReviewRepository
	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	ServiceRepo  repository.ServiceRepository
	Logger       *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		subjects: subjectResolver{
			businessRepo: params.BusinessRepo,
			productRepo:  params.ProductRepo,
			serviceRepo:  params.ServiceRepo,
		},
		logger: params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview leaves a rating on exactly one subject.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if !validRating(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}

	subject := entity.SubjectRef{
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
	}
	ownerID, err := srv.subjects.ownerOf(ctx, subject)
	if err != nil {
		return nil, err
	}
	if ownerID == userID {
		return nil, domainerrors.ErrReviewOwnSubject
	}

	if _, err := srv.reviewRepo.FindByUserAndSubject(ctx, userID, subject); err == nil {
		return nil, domainerrors.ErrReviewAlreadyExists
	} else if !errors.Is(err, repository.ErrReviewNotFound) {
		return nil, errors.Wrap(err, "failed to check existing review")
	}

	review := &entity.Review{
		UserID:     userID,
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, domainerrors.ErrReviewAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create review")
	}

	srv.log(ctx).Info("Review created",
		slog.Any("reviewID", review.ID),
		slog.Any("userID", userID),
		slog.Int("rating", review.Rating),
	)

	return review, nil
}

// UpdateReview modifies the caller's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	review, err := srv.ownedReview(ctx, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if input.Rating != nil {
		if !validRating(*input.Rating) {
			return nil, domainerrors.ErrInvalidRating
		}
		review.Rating = *input.Rating
	}
	if input.Comment != nil {
		review.Comment = *input.Comment
	}

	if err := srv.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes the caller's own review.
func (srv *reviewService) DeleteReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) error {
	if _, err := srv.ownedReview(ctx, userID, reviewID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

// ListReviews retrieves a subject's reviews with the rating summary.
func (srv *reviewService) ListReviews(ctx context.Context, input *usecase.ListReviewsInput) (*usecase.ReviewListOutput, error) {
	subject := entity.SubjectRef{
		BusinessID: input.BusinessID,
		ProductID:  input.ProductID,
		ServiceID:  input.ServiceID,
	}
	if !subject.Valid() {
		return nil, domainerrors.ErrInvalidSubject
	}

	page, limit := normalizePage(input.Page, input.Limit)
	items, total, err := srv.reviewRepo.ListBySubject(ctx, subject, page, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	aggregate, err := srv.reviewRepo.AggregateBySubject(ctx, subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews")
	}

	return &usecase.ReviewListOutput{
		Items:     items,
		Total:     total,
		Page:      page,
		Limit:     limit,
		Aggregate: aggregate,
	}, nil
}

func (srv *reviewService) ownedReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return review, nil
}

func validRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
