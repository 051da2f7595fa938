package queries

import (
	"context"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingListItem, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	ListByHost(ctx context.Context, hostID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

// GetByID returns the booking to its guest, the property's host, or an
// admin. Anyone else is refused outright.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole user.Role) (*BookingView, error) {
	bv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if actorRole != user.RoleAdmin && bv.GuestID != actorID && bv.HostID != actorID {
		return nil, ErrAccessDenied
	}
	return bv, nil
}

func (q *bookingQueriesImpl) ListByGuest(ctx context.Context, guestID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if actorRole != user.RoleAdmin && guestID != actorID {
		return nil, nil, ErrAccessDenied
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByGuestFirstPage(ctx, guestID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByGuestKeyset(ctx, guestID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateBookings(rows, limit)
}

func (q *bookingQueriesImpl) ListByHost(ctx context.Context, hostID, actorID uuid.UUID, actorRole user.Role, cursor *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	if actorRole != user.RoleAdmin && hostID != actorID {
		return nil, nil, ErrAccessDenied
	}

	limit = ValidateLimit(limit)
	var rows []*BookingListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByHostFirstPage(ctx, hostID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByHostKeyset(ctx, hostID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	return paginateBookings(rows, limit)
}

func paginateBookings(rows []*BookingListItem, limit int) ([]*BookingListItem, *Cursor, error) {
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
