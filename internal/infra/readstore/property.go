package readstore

import (
	"context"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyReadStore struct {
	db DB
}

func NewPropertyReadStore(dbtx DB) queries.PropertyReadStore {
	return &PropertyReadStore{db: dbtx}
}

func (s *PropertyReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	const query = `
		SELECT p.id, p.host_id, u.name, p.title, p.description, p.location,
		       p.nightly_price_cents, p.max_guests, p.amenities, p.image_urls,
		       p.average_rating, p.review_count, p.created_at, p.updated_at
		FROM properties p
		JOIN users u ON u.id = p.host_id
		WHERE p.id = @id`

	var pv queries.PropertyView
	err := s.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).Scan(
		&pv.ID, &pv.HostID, &pv.HostName, &pv.Title, &pv.Description, &pv.Location,
		&pv.NightlyPriceCents, &pv.MaxGuests, &pv.Amenities, &pv.ImageURLs,
		&pv.AverageRating, &pv.ReviewCount, &pv.CreatedAt, &pv.UpdatedAt,
	)
	if err != nil {
		return nil, wrapErr("failed to find property", err)
	}

	ranges, err := s.bookedRanges(ctx, id)
	if err != nil {
		return nil, err
	}
	pv.BookedRanges = ranges
	return &pv, nil
}

func (s *PropertyReadStore) bookedRanges(ctx context.Context, propertyID uuid.UUID) ([]queries.BookedRange, error) {
	const query = `
		SELECT lower(during), upper(during)
		FROM property_availability
		WHERE property_id = @property_id
		ORDER BY lower(during)`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"property_id": propertyID})
	if err != nil {
		return nil, wrapErr("failed to list booked ranges", err)
	}
	defer rows.Close()

	ranges := make([]queries.BookedRange, 0)
	for rows.Next() {
		var br queries.BookedRange
		if err := rows.Scan(&br.Start, &br.End); err != nil {
			return nil, wrapErr("failed to scan booked range", err)
		}
		ranges = append(ranges, br)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate booked ranges", err)
	}
	return ranges, nil
}

const propertyListColumns = `
	p.id, p.title, p.location, p.nightly_price_cents, p.max_guests,
	p.average_rating, p.review_count, p.created_at`

func (s *PropertyReadStore) FindFirstPage(ctx context.Context, filters queries.PropertyFilters, limit int32) ([]*queries.PropertyListItem, error) {
	const query = `
		SELECT ` + propertyListColumns + `
		FROM properties p
		WHERE (@location::text IS NULL OR p.location ILIKE '%' || @location || '%')
		  AND (@min_guests::int IS NULL OR p.max_guests >= @min_guests)
		  AND (@max_price::bigint IS NULL OR p.nightly_price_cents <= @max_price)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{
		"location":   filters.Location,
		"min_guests": filters.MinGuests,
		"max_price":  filters.MaxNightlyPriceCents,
		"limit":      limit,
	})
	if err != nil {
		return nil, wrapErr("failed to list properties", err)
	}
	return scanPropertyList(rows)
}

func (s *PropertyReadStore) FindKeyset(ctx context.Context, filters queries.PropertyFilters, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.PropertyListItem, error) {
	const query = `
		SELECT ` + propertyListColumns + `
		FROM properties p
		WHERE (@location::text IS NULL OR p.location ILIKE '%' || @location || '%')
		  AND (@min_guests::int IS NULL OR p.max_guests >= @min_guests)
		  AND (@max_price::bigint IS NULL OR p.nightly_price_cents <= @max_price)
		  AND (p.created_at, p.id) < (@last_created_at, @last_id)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT @limit`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{
		"location":        filters.Location,
		"min_guests":      filters.MinGuests,
		"max_price":       filters.MaxNightlyPriceCents,
		"last_created_at": lastCreatedAt,
		"last_id":         lastID,
		"limit":           limit,
	})
	if err != nil {
		return nil, wrapErr("failed to list properties", err)
	}
	return scanPropertyList(rows)
}

func (s *PropertyReadStore) FindByHost(ctx context.Context, hostID uuid.UUID) ([]*queries.PropertyListItem, error) {
	const query = `
		SELECT ` + propertyListColumns + `
		FROM properties p
		WHERE p.host_id = @host_id
		ORDER BY p.created_at DESC, p.id DESC`

	rows, err := s.db.Query(ctx, query, pgx.NamedArgs{"host_id": hostID})
	if err != nil {
		return nil, wrapErr("failed to list host properties", err)
	}
	return scanPropertyList(rows)
}

func scanPropertyList(rows pgx.Rows) ([]*queries.PropertyListItem, error) {
	defer rows.Close()

	items := make([]*queries.PropertyListItem, 0)
	for rows.Next() {
		var it queries.PropertyListItem
		err := rows.Scan(
			&it.ID, &it.Title, &it.Location, &it.NightlyPriceCents, &it.MaxGuests,
			&it.AverageRating, &it.ReviewCount, &it.CreatedAt,
		)
		if err != nil {
			return nil, wrapErr("failed to scan property row", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("failed to iterate property rows", err)
	}
	return items, nil
}
