package request

import (
	"time"

	"stayhub/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID   uuid.UUID `json:"property_id" binding:"required"`
	CheckIn      time.Time `json:"check_in" binding:"required"`
	CheckOut     time.Time `json:"check_out" binding:"required"`
	Guests       int       `json:"guests" binding:"required,gt=0"`
	CustomerName string    `json:"customer_name" binding:"required"`
}

func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		PropertyID:   r.PropertyID,
		CheckIn:      r.CheckIn,
		CheckOut:     r.CheckOut,
		Guests:       r.Guests,
		CustomerName: r.CustomerName,
	}
}

type ListBookingsRequest struct {
	After string `form:"after"`
	Limit int    `form:"limit"`
}
