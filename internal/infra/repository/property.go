package repository

import (
	"context"

	"stayhub/internal/domain/property"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PropertyRepository struct {
	db DB
}

func NewPropertyRepository(dbtx DB) shared.PropertyRepository {
	return &PropertyRepository{db: dbtx}
}

func (r *PropertyRepository) Create(ctx context.Context, p *property.Property) (uuid.UUID, error) {
	const query = `
		INSERT INTO properties (id, host_id, title, description, location, nightly_price_cents, max_guests, amenities, image_urls)
		VALUES (@id, @host_id, @title, @description, @location, @nightly_price_cents, @max_guests, @amenities, @image_urls)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":                  p.ID(),
		"host_id":             p.HostID(),
		"title":               p.Title(),
		"description":         p.Description(),
		"location":            p.Location(),
		"nightly_price_cents": p.NightlyPriceCents(),
		"max_guests":          p.MaxGuests(),
		"amenities":           p.Amenities(),
		"image_urls":          p.ImageURLs(),
	}).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create property", err)
	}
	return id, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *property.Property) error {
	const query = `
		UPDATE properties
		SET title = @title,
		    description = @description,
		    location = @location,
		    nightly_price_cents = @nightly_price_cents,
		    max_guests = @max_guests,
		    amenities = @amenities,
		    image_urls = @image_urls
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{
		"id":                  p.ID(),
		"title":               p.Title(),
		"description":         p.Description(),
		"location":            p.Location(),
		"nightly_price_cents": p.NightlyPriceCents(),
		"max_guests":          p.MaxGuests(),
		"amenities":           p.Amenities(),
		"image_urls":          p.ImageURLs(),
	})
	if err != nil {
		return wrapErr("failed to update property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "property not found", nil)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM properties WHERE id = @id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return wrapErr("failed to delete property", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "property not found", nil)
	}
	return nil
}
