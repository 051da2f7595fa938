package readstore

import (
	"context"
	"time"

	"stayhub/internal/domain/property"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads serves the lookups command usecases need. Bound to a
// transaction it participates in the caller's isolation; bound to the
// pool it reads committed state.
type CommandReads struct {
	db DB
}

func NewCommandReads(dbtx DB) shared.CommandReads {
	return &CommandReads{db: dbtx}
}

func (s *CommandReads) PropertyByID(ctx context.Context, id uuid.UUID) (*shared.PropertySnapshot, error) {
	const query = `
		SELECT id, host_id, title, nightly_price_cents, max_guests
		FROM properties
		WHERE id = @id`

	var snap shared.PropertySnapshot
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).
		Scan(&snap.ID, &snap.HostID, &snap.Title, &snap.NightlyPriceCents, &snap.MaxGuests)
	if err != nil {
		return nil, wrapErr("failed to find property", err)
	}
	return &snap, nil
}

func (s *CommandReads) PropertyDetailByID(ctx context.Context, id uuid.UUID) (*shared.PropertyDetailSnapshot, error) {
	const query = `
		SELECT id, host_id, title, description, location, nightly_price_cents,
		       max_guests, amenities, image_urls, created_at, updated_at
		FROM properties
		WHERE id = @id`

	var snap shared.PropertyDetailSnapshot
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&snap.ID, &snap.HostID, &snap.Title, &snap.Description, &snap.Location,
		&snap.NightlyPriceCents, &snap.MaxGuests, &snap.Amenities, &snap.ImageURLs,
		&snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find property", err)
	}
	return &snap, nil
}

func (s *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT b.id, b.guest_id, b.property_id, p.host_id, b.check_in, b.check_out,
		       b.status, b.customer_name
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.id = @id`

	var snap shared.BookingSnapshot
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&snap.ID, &snap.GuestID, &snap.PropertyID, &snap.HostID, &snap.CheckIn, &snap.CheckOut,
		&snap.Status, &snap.CustomerName,
	)
	if err != nil {
		return nil, wrapErr("failed to find booking", err)
	}
	return &snap, nil
}

func (s *CommandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	const query = `
		SELECT id, property_id, author_id, rating, comment
		FROM reviews
		WHERE id = @id`

	var snap shared.ReviewSnapshot
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).
		Scan(&snap.ID, &snap.PropertyID, &snap.AuthorID, &snap.Rating, &snap.Comment)
	if err != nil {
		return nil, wrapErr("failed to find review", err)
	}
	return &snap, nil
}

func (s *CommandReads) ReviewByPropertyAndAuthor(ctx context.Context, propertyID, authorID uuid.UUID) (*shared.ReviewSnapshot, error) {
	const query = `
		SELECT id, property_id, author_id, rating, comment
		FROM reviews
		WHERE property_id = @property_id AND author_id = @author_id`

	var snap shared.ReviewSnapshot
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{
		"property_id": propertyID,
		"author_id":   authorID,
	}).Scan(&snap.ID, &snap.PropertyID, &snap.AuthorID, &snap.Rating, &snap.Comment)
	if err != nil {
		return nil, wrapErr("failed to find review", err)
	}
	return &snap, nil
}

func (s *CommandReads) HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID, now time.Time) (bool, error) {
	return hasCompletedStay(ctx, s.db, guestID, propertyID, now)
}

func (s *CommandReads) CommittedRanges(ctx context.Context, propertyID uuid.UUID) ([]property.AvailabilityRange, error) {
	const query = `
		SELECT lower(during), upper(during)
		FROM property_availability
		WHERE property_id = @property_id
		ORDER BY lower(during)`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"property_id": propertyID})
	if err != nil {
		return nil, wrapErr("failed to list committed ranges", err)
	}
	defer rows.Close()

	ranges := make([]property.AvailabilityRange, 0)
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, wrapErr("failed to scan committed range", err)
		}
		rng, err := property.NewAvailabilityRange(start, end)
		if err != nil {
			return nil, wrapErr("invalid committed range in store", err)
		}
		ranges = append(ranges, rng)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate committed ranges", err)
	}
	return ranges, nil
}
