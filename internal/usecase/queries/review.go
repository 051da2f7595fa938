package queries

import (
	"context"
	"time"

	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewListItem, error)
	// HasCompletedStay and HasReview back the eligibility check shown
	// to clients before they attempt a submission.
	HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID, now time.Time) (bool, error)
	HasReview(ctx context.Context, propertyID, authorID uuid.UUID) (bool, error)
}

// Eligibility explains whether a guest may review a property right now.
type Eligibility struct {
	Eligible         bool   `json:"eligible"`
	HasCompletedStay bool   `json:"has_completed_stay"`
	AlreadyReviewed  bool   `json:"already_reviewed"`
	Reason           string `json:"reason,omitempty"`
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error)
	CheckEligibility(ctx context.Context, propertyID, guestID uuid.UUID) (*Eligibility, error)
}

type reviewQueriesImpl struct {
	repo  ReviewReadStore
	clock clock.Clock
}

func NewReviewQueries(repo ReviewReadStore, clk clock.Clock) ReviewQueries {
	return &reviewQueriesImpl{repo: repo, clock: clk}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByProperty(ctx context.Context, propertyID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByPropertyFirstPage(ctx, propertyID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByPropertyKeyset(ctx, propertyID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

// CheckEligibility is advisory: the submission path re-checks inside
// its transaction, so a stale answer here can never admit an
// ineligible review.
func (q *reviewQueriesImpl) CheckEligibility(ctx context.Context, propertyID, guestID uuid.UUID) (*Eligibility, error) {
	completed, err := q.repo.HasCompletedStay(ctx, guestID, propertyID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	reviewed, err := q.repo.HasReview(ctx, propertyID, guestID)
	if err != nil {
		return nil, err
	}

	e := &Eligibility{
		Eligible:         completed && !reviewed,
		HasCompletedStay: completed,
		AlreadyReviewed:  reviewed,
	}
	switch {
	case !completed:
		e.Reason = "no completed stay on this property"
	case reviewed:
		e.Reason = "review already submitted"
	}
	return e, nil
}
