//go:build unit || e2e

package builder

import (
	"time"

	domreview "stayhub/internal/domain/review"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	PropertyID uuid.UUID
	AuthorID   uuid.UUID
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		PropertyID: uuid.New(),
		AuthorID:   uuid.New(),
		Rating:     5,
		Comment:    "Wonderful stay!",
		CreatedAt:  time.Now(),
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.PropertyID, r.AuthorID, r.Rating, r.Comment, r.CreatedAt)
}
