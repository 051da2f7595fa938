package readstore

import (
	"context"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db DB
}

func NewBookingReadStore(dbtx DB) queries.BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const query = `
		SELECT b.id, b.property_id, p.title, p.host_id, b.guest_id, u.email,
		       b.customer_name, b.check_in, b.check_out, b.guests,
		       b.total_price_cents, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN users u ON u.id = b.guest_id
		WHERE b.id = @id`

	var bv queries.BookingView
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&bv.ID, &bv.PropertyID, &bv.PropertyTitle, &bv.HostID, &bv.GuestID, &bv.GuestEmail,
		&bv.CustomerName, &bv.CheckIn, &bv.CheckOut, &bv.Guests,
		&bv.TotalPriceCents, &bv.Status, &bv.CreatedAt, &bv.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return &bv, nil
}

const bookingListColumns = `
	b.id, b.property_id, p.title, b.check_in, b.check_out, b.guests,
	b.total_price_cents, b.status, b.created_at`

func (s *BookingReadStore) FindByGuestFirstPage(ctx context.Context, guestID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.guest_id = @guest_id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"guest_id": guestID, "limit": limit})
	if err != nil {
		return nil, wrapErr("failed to list guest bookings", err)
	}
	return scanBookingList(rows)
}

func (s *BookingReadStore) FindByGuestKeyset(ctx context.Context, guestID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.guest_id = @guest_id
		  AND (b.created_at, b.id) < (@last_created_at, @last_id)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{
		"guest_id":        guestID,
		"last_created_at": lastCreatedAt,
		"last_id":         lastID,
		"limit":           limit,
	})
	if err != nil {
		return nil, wrapErr("failed to list guest bookings", err)
	}
	return scanBookingList(rows)
}

func (s *BookingReadStore) FindByHostFirstPage(ctx context.Context, hostID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE p.host_id = @host_id
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"host_id": hostID, "limit": limit})
	if err != nil {
		return nil, wrapErr("failed to list host bookings", err)
	}
	return scanBookingList(rows)
}

func (s *BookingReadStore) FindByHostKeyset(ctx context.Context, hostID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	const query = `
		SELECT ` + bookingListColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE p.host_id = @host_id
		  AND (b.created_at, b.id) < (@last_created_at, @last_id)
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{
		"host_id":         hostID,
		"last_created_at": lastCreatedAt,
		"last_id":         lastID,
		"limit":           limit,
	})
	if err != nil {
		return nil, wrapErr("failed to list host bookings", err)
	}
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	defer rows.Close()

	items := make([]*queries.BookingListItem, 0)
	for rows.Next() {
		var it queries.BookingListItem
		err := rows.Scan(
			&it.ID, &it.PropertyID, &it.PropertyTitle, &it.CheckIn, &it.CheckOut,
			&it.Guests, &it.TotalPriceCents, &it.Status, &it.CreatedAt,
		)
		if err != nil {
			return nil, wrapErr("failed to scan booking row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate booking rows", err)
	}
	return items, nil
}
