package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ReviewListResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"authorName"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReviewPageResponse struct {
	Items      []*ReviewListResponse `json:"items"`
	NextCursor string                `json:"nextCursor,omitempty"`
}

type EligibilityResponse struct {
	Eligible         bool   `json:"eligible"`
	HasCompletedStay bool   `json:"hasCompletedStay"`
	AlreadyReviewed  bool   `json:"alreadyReviewed"`
	Reason           string `json:"reason,omitempty"`
}

func FromReviewView(rv *queries.ReviewView) (*ReviewResponse, error) {
	var resp ReviewResponse
	if err := copier.Copy(&resp, rv); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) (*ReviewPageResponse, error) {
	out := make([]*ReviewListResponse, 0, len(items))
	if err := copier.Copy(&out, items); err != nil {
		return nil, err
	}

	page := &ReviewPageResponse{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	return page, nil
}

func FromEligibility(e *queries.Eligibility) *EligibilityResponse {
	return &EligibilityResponse{
		Eligible:         e.Eligible,
		HasCompletedStay: e.HasCompletedStay,
		AlreadyReviewed:  e.AlreadyReviewed,
		Reason:           e.Reason,
	}
}
