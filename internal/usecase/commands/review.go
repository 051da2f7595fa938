package commands

import (
	"context"

	"stayhub/internal/domain/review"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound      = errs.New("review not found")
	ErrNoCompletedStay     = errs.New("no completed stay on this property")
	ErrReviewAlreadyExists = errs.New("review already exists for this property")
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID
	Rating     int
	Comment    string
}

type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, authorID uuid.UUID) (uuid.UUID, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole user.Role) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

// CreateReview re-checks eligibility inside the transaction so the
// completed-stay requirement and the one-review-per-author rule hold
// at commit time, not just at request time. The unique index on
// (property, author) backs the duplicate check under concurrency.
func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, authorID uuid.UUID) (uuid.UUID, error) {
	now := uc.clock.Now()

	entity, err := review.NewReview(uuid.Nil, req.PropertyID, authorID, req.Rating, req.Comment, now)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err = uc.uow.CommandReads().PropertyByID(ctx, req.PropertyID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrPropertyNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	var reviewID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		eligible, derr := tx.Reads().HasCompletedStay(ctx, authorID, req.PropertyID, now)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !eligible {
			return ErrNoCompletedStay
		}

		id, derr := tx.Reviews().Create(ctx, entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrReviewAlreadyExists
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = tx.RatingStats().RecalcPropertyRating(ctx, req.PropertyID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		reviewID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return reviewID, nil
}

// UpdateReview applies partial changes. Only the author may edit.
func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	snap, err := uc.uow.CommandReads().ReviewByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.AuthorID != actorID {
		return ErrNotAllowed
	}

	rating := snap.Rating
	if req.Rating != nil {
		rating = *req.Rating
	}
	comment := snap.Comment
	if req.Comment != nil {
		comment = *req.Comment
	}

	entity, err := review.NewReview(snap.ID, snap.PropertyID, snap.AuthorID, rating, comment, uc.clock.Now())
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Reviews().Update(ctx, entity); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr := tx.RatingStats().RecalcPropertyRating(ctx, snap.PropertyID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteReview removes a review. The author or an admin may delete.
func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole user.Role) error {
	snap, err := uc.uow.CommandReads().ReviewByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if snap.AuthorID != actorID && actorRole != user.RoleAdmin {
		return ErrNotAllowed
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Reviews().Delete(ctx, snap.ID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr := tx.RatingStats().RecalcPropertyRating(ctx, snap.PropertyID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
