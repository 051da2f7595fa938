package repository

import (
	"context"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReviewRepository struct {
	db DB
}

func NewReviewRepository(dbtx DB) shared.ReviewRepository {
	return &ReviewRepository{db: dbtx}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	const query = `
		INSERT INTO reviews (id, property_id, author_id, rating, comment)
		VALUES (@id, @property_id, @author_id, @rating, @comment)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":          rev.ID(),
		"property_id": rev.PropertyID(),
		"author_id":   rev.AuthorID(),
		"rating":      rev.Rating().Value(),
		"comment":     rev.Comment().String(),
	}).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	const query = `
		UPDATE reviews
		SET rating = @rating, comment = @comment
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{
		"id":      rev.ID(),
		"rating":  rev.Rating().Value(),
		"comment": rev.Comment().String(),
	})
	if err != nil {
		return wrapErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "review not found", nil)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewID uuid.UUID) error {
	const query = `DELETE FROM reviews WHERE id = @id`

	tag, err := r.db.Exec(ctx, query, pgx.NamedArgs{"id": reviewID})
	if err != nil {
		return wrapErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "review not found", nil)
	}
	return nil
}
