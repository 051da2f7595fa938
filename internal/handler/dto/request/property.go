package request

import (
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
)

type CreatePropertyRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Location          string   `json:"location" binding:"required"`
	NightlyPriceCents int64    `json:"nightly_price_cents" binding:"required,gt=0"`
	MaxGuests         int      `json:"max_guests" binding:"required,gt=0"`
	Amenities         []string `json:"amenities"`
	ImageURLs         []string `json:"image_urls"`
}

func (r CreatePropertyRequest) ToCommand() commands.CreatePropertyRequest {
	return commands.CreatePropertyRequest{
		Title:             r.Title,
		Description:       r.Description,
		Location:          r.Location,
		NightlyPriceCents: r.NightlyPriceCents,
		MaxGuests:         r.MaxGuests,
		Amenities:         r.Amenities,
		ImageURLs:         r.ImageURLs,
	}
}

type UpdatePropertyRequest struct {
	Title             *string  `json:"title,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Location          *string  `json:"location,omitempty"`
	NightlyPriceCents *int64   `json:"nightly_price_cents,omitempty"`
	MaxGuests         *int     `json:"max_guests,omitempty"`
	Amenities         []string `json:"amenities,omitempty"`
	ImageURLs         []string `json:"image_urls,omitempty"`
}

func (r UpdatePropertyRequest) ToCommand() commands.UpdatePropertyRequest {
	return commands.UpdatePropertyRequest{
		Title:             r.Title,
		Description:       r.Description,
		Location:          r.Location,
		NightlyPriceCents: r.NightlyPriceCents,
		MaxGuests:         r.MaxGuests,
		Amenities:         r.Amenities,
		ImageURLs:         r.ImageURLs,
	}
}

type ListPropertiesRequest struct {
	Location  *string `form:"location"`
	MinGuests *int    `form:"min_guests"`
	MaxPrice  *int64  `form:"max_price_cents"`
	After     string  `form:"after"`
	Limit     int     `form:"limit"`
}

func (r ListPropertiesRequest) Filters() queries.PropertyFilters {
	return queries.PropertyFilters{
		Location:             r.Location,
		MinGuests:            r.MinGuests,
		MaxNightlyPriceCents: r.MaxPrice,
	}
}
