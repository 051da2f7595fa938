package queries

import (
	"context"
	"time"

	"stayhub/internal/infra"

	"github.com/google/uuid"
)

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	FindFirstPage(ctx context.Context, filters PropertyFilters, limit int32) ([]*PropertyListItem, error)
	FindKeyset(ctx context.Context, filters PropertyFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*PropertyListItem, error)
	FindByHost(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error)
}

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filters PropertyFilters, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error)
}

type propertyQueriesImpl struct {
	repo PropertyReadStore
}

func NewPropertyQueries(repo PropertyReadStore) PropertyQueries {
	return &propertyQueriesImpl{repo: repo}
}

func (q *propertyQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	pv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return pv, nil
}

func (q *propertyQueriesImpl) List(ctx context.Context, filters PropertyFilters, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*PropertyListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindFirstPage(ctx, filters, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindKeyset(ctx, filters, lastCreatedAt, lastID, int32(limit+1))
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

func (q *propertyQueriesImpl) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*PropertyListItem, error) {
	return q.repo.FindByHost(ctx, hostID)
}
