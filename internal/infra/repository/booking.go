package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db DB
}

func NewBookingRepository(dbtx DB) shared.BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	const query = `
		INSERT INTO bookings (id, property_id, guest_id, customer_name, check_in, check_out, guests, total_price_cents, status)
		VALUES (@id, @property_id, @guest_id, @customer_name, @check_in, @check_out, @guests, @total_price_cents, @status)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":                b.ID(),
		"property_id":       b.PropertyID(),
		"guest_id":          b.GuestID(),
		"customer_name":     b.CustomerName().String(),
		"check_in":          b.Stay().CheckIn(),
		"check_out":         b.Stay().CheckOut(),
		"guests":            b.Guests(),
		"total_price_cents": b.TotalPriceCents(),
		"status":            b.Status().String(),
	}).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `UPDATE bookings SET status = @status WHERE id = @id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{
		"id":     id,
		"status": status.String(),
	})
	if err != nil {
		return wrapErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) PurgeCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	const query = `
		DELETE FROM bookings
		WHERE status = 'cancelled' AND check_out < @cutoff`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{"cutoff": cutoff})
	if err != nil {
		return 0, wrapErr("failed to purge cancelled bookings", err)
	}
	return tag.RowsAffected(), nil
}
