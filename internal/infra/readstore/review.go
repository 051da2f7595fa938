package readstore

import (
	"context"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewReadStore struct {
	db DB
}

func NewReviewReadStore(dbtx DB) queries.ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const query = `
		SELECT r.id, r.property_id, r.author_id, u.name, r.rating, r.comment,
		       r.created_at, r.updated_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.id = @id`

	var rv queries.ReviewView
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&rv.ID, &rv.PropertyID, &rv.AuthorID, &rv.AuthorName, &rv.Rating, &rv.Comment,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find review", err)
	}
	return &rv, nil
}

func (s *ReviewReadStore) FindByPropertyFirstPage(ctx context.Context, propertyID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.name, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.property_id = @property_id
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"property_id": propertyID, "limit": limit})
	if err != nil {
		return nil, wrapErr("failed to list reviews", err)
	}
	return scanReviewList(rows)
}

func (s *ReviewReadStore) FindByPropertyKeyset(ctx context.Context, propertyID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	const query = `
		SELECT r.id, u.name, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.property_id = @property_id
		  AND (r.created_at, r.id) < (@last_created_at, @last_id)
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{
		"property_id":     propertyID,
		"last_created_at": lastCreatedAt,
		"last_id":         lastID,
		"limit":           limit,
	})
	if err != nil {
		return nil, wrapErr("failed to list reviews", err)
	}
	return scanReviewList(rows)
}

func (s *ReviewReadStore) HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID, now time.Time) (bool, error) {
	return hasCompletedStay(ctx, s.db, guestID, propertyID, now)
}

func (s *ReviewReadStore) HasReview(ctx context.Context, propertyID, authorID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE property_id = @property_id AND author_id = @author_id
		)`

	var exists bool
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{
		"property_id": propertyID,
		"author_id":   authorID,
	}).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check review existence", err)
	}
	return exists, nil
}

// Shared with the command-side reads: eligibility means a confirmed
// booking whose checkout is strictly in the past.
func hasCompletedStay(ctx context.Context, dbtx DB, guestID, propertyID uuid.UUID, now time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE guest_id = @guest_id
			  AND property_id = @property_id
			  AND status = 'confirmed'
			  AND check_out < @now
		)`

	var exists bool
	err := dbtx.QueryRow(ctx, query, pgx.NamedArgs{
		"guest_id":    guestID,
		"property_id": propertyID,
		"now":         now,
	}).Scan(&exists)
	if err != nil {
		return false, wrapErr("failed to check completed stay", err)
	}
	return exists, nil
}

func scanReviewList(rows pgx.Rows) ([]*queries.ReviewListItem, error) {
	defer rows.Close()

	items := make([]*queries.ReviewListItem, 0)
	for rows.Next() {
		var it queries.ReviewListItem
		if err := rows.Scan(&it.ID, &it.AuthorName, &it.Rating, &it.Comment, &it.CreatedAt); err != nil {
			return nil, wrapErr("failed to scan review row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate review rows", err)
	}
	return items, nil
}
