package queries

import (
	"time"

	"stayhub/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound = errs.New("property not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrReviewNotFound   = errs.New("review not found")
	ErrAccessDenied     = errs.New("access denied")
	ErrInvalidCursor    = errs.New("invalid cursor")
)

// Read models (DTO for read side)

type PropertyView struct {
	ID                uuid.UUID     `json:"id"`
	HostID            uuid.UUID     `json:"host_id"`
	HostName          string        `json:"host_name"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Location          string        `json:"location"`
	NightlyPriceCents int64         `json:"nightly_price_cents"`
	MaxGuests         int32         `json:"max_guests"`
	Amenities         []string      `json:"amenities"`
	ImageURLs         []string      `json:"image_urls"`
	AverageRating     float64       `json:"average_rating"`
	ReviewCount       int32         `json:"review_count"`
	BookedRanges      []BookedRange `json:"booked_ranges"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// BookedRange is a committed stay shown on the availability calendar.
// End is exclusive.
type BookedRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type PropertyListItem struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Location          string    `json:"location"`
	NightlyPriceCents int64     `json:"nightly_price_cents"`
	MaxGuests         int32     `json:"max_guests"`
	AverageRating     float64   `json:"average_rating"`
	ReviewCount       int32     `json:"review_count"`
	CreatedAt         time.Time `json:"created_at"`
}

type PropertyFilters struct {
	Location             *string
	MinGuests            *int
	MaxNightlyPriceCents *int64
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyTitle   string    `json:"property_title"`
	HostID          uuid.UUID `json:"host_id"`
	GuestID         uuid.UUID `json:"guest_id"`
	GuestEmail      string    `json:"guest_email"`
	CustomerName    string    `json:"customer_name"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int32     `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID              uuid.UUID `json:"id"`
	PropertyID      uuid.UUID `json:"property_id"`
	PropertyTitle   string    `json:"property_title"`
	CheckIn         time.Time `json:"check_in"`
	CheckOut        time.Time `json:"check_out"`
	Guests          int32     `json:"guests"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReviewView struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"property_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReviewListItem struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Rating     int32     `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
