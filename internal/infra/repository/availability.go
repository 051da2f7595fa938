package repository

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AvailabilityRepository struct {
	db DB
}

func NewAvailabilityRepository(dbtx DB) shared.AvailabilityRepository {
	return &AvailabilityRepository{db: dbtx}
}

// Commit inserts the booked range. The exclusion constraint on
// (property_id, during) rejects overlaps, which wrapErr surfaces as a
// conflict kind.
func (r *AvailabilityRepository) Commit(ctx context.Context, propertyID, bookingID uuid.UUID, rng property.AvailabilityRange) error {
	const query = `
		INSERT INTO property_availability (booking_id, property_id, during)
		VALUES (@booking_id, @property_id, @during::daterange)`

	_, err := r.db.Exec(ctx, query, pgx.NamedArgs{
		"booking_id":  bookingID,
		"property_id": propertyID,
		"during":      rng.ToDaterange(),
	})
	if err != nil {
		return wrapErr("failed to commit availability range", err)
	}
	return nil
}

// Release deletes by booking ID. Zero rows is fine: the range may have
// been released by an earlier attempt of the same cancellation.
func (r *AvailabilityRepository) Release(ctx context.Context, bookingID uuid.UUID) error {
	const query = `DELETE FROM property_availability WHERE booking_id = @booking_id`

	if _, err := r.db.Exec(ctx, query, pgx.NamedArgs{"booking_id": bookingID}); err != nil {
		return wrapErr("failed to release availability range", err)
	}
	return nil
}
