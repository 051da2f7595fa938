package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side read operations.

type PropertySnapshot struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	Title             string
	NightlyPriceCents int64
	MaxGuests         int
}

type PropertyDetailSnapshot struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	Title             string
	Description       string
	Location          string
	NightlyPriceCents int64
	MaxGuests         int
	Amenities         []string
	ImageURLs         []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type BookingSnapshot struct {
	ID           uuid.UUID
	GuestID      uuid.UUID
	PropertyID   uuid.UUID
	HostID       uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Status       string
	CustomerName string
}

type ReviewSnapshot struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	AuthorID   uuid.UUID
	Rating     int
	Comment    string
}
