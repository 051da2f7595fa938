package request

import (
	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	Rating     int       `json:"rating" binding:"required,min=1,max=5"`
	Comment    string    `json:"comment"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		PropertyID: r.PropertyID,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

type ListReviewsRequest struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

func (r UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		Rating:  r.Rating,
		Comment: r.Comment,
	}
}
