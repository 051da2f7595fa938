package repository

import (
	"context"

	"stayhub/internal/infra"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RatingStatsRepository struct {
	db DB
}

func NewRatingStatsRepository(dbtx DB) shared.RatingStatsRepository {
	return &RatingStatsRepository{db: dbtx}
}

// RecalcPropertyRating recomputes the aggregate from scratch over all
// current reviews. Full recomputation keeps the stored value immune to
// incremental drift from concurrent edits and deletes.
func (r *RatingStatsRepository) RecalcPropertyRating(ctx context.Context, propertyID uuid.UUID) error {
	const query = `
		UPDATE properties p
		SET average_rating = COALESCE(s.avg_rating, 0),
		    review_count   = COALESCE(s.cnt, 0)
		FROM (
			SELECT avg(rating)::double precision AS avg_rating, count(*) AS cnt
			FROM reviews
			WHERE property_id = @property_id
		) s
		WHERE p.id = @property_id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{"property_id": propertyID})
	if err != nil {
		return wrapErr("failed to recalculate property rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "property not found", nil)
	}
	return nil
}
