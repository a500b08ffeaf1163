package impl

import (
	"context"

	"vitrina/internal/domain/entity"
	domainerrors "vitrina/internal/domain/errors"
	"vitrina/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// subjectResolver checks that a review or favorite target exists and
// reports who owns it.
type subjectResolver struct {
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	serviceRepo  repository.ServiceRepository
}

// ownerOf resolves the subject to its owning user. Exactly one reference
// must be set; a missing subject maps to its not-found error.
func (r subjectResolver) ownerOf(ctx context.Context, subject entity.SubjectRef) (uuid.UUID, error) {
	if !subject.Valid() {
		return uuid.Nil, domainerrors.ErrInvalidSubject
	}

	switch {
	case subject.BusinessID != nil:
		business, err := r.businessRepo.FindByID(ctx, *subject.BusinessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return uuid.Nil, domainerrors.ErrBusinessNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find business subject")
		}

		return business.UserID, nil
	case subject.ProductID != nil:
		product, err := r.productRepo.FindByID(ctx, *subject.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return uuid.Nil, domainerrors.ErrProductNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find product subject")
		}

		return product.UserID, nil
	default:
		svc, err := r.serviceRepo.FindByID(ctx, *subject.ServiceID)
		if err != nil {
			if errors.Is(err, repository.ErrServiceNotFound) {
				return uuid.Nil, domainerrors.ErrServiceNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find service subject")
		}

		return svc.UserID, nil
	}
}
