package review

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoCompletedStay     = errors.New("no completed stay on this property")
	ErrReviewAlreadyExists = errors.New("review already exists for this property")
)

// Review is one author's review of one property. At most one review
// exists per (property, author) pair.
type Review struct {
	id         uuid.UUID
	propertyID uuid.UUID
	authorID   uuid.UUID
	rating     Rating
	comment    Comment
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(id, propertyID, authorID uuid.UUID, ratingValue int, commentText string, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}

	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:         id,
		propertyID: propertyID,
		authorID:   authorID,
		rating:     rating,
		comment:    comment,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}


func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) PropertyID() uuid.UUID { return r.propertyID }
func (r *Review) AuthorID() uuid.UUID   { return r.authorID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }

// AverageRating is the arithmetic mean of the given ratings, zero when
// there are none. Recomputed fully on every mutation to avoid drift.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}
