package property

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle        = errors.New("property title cannot be empty")
	ErrTitleTooLong      = errors.New("property title is too long (max 255 characters)")
	ErrEmptyLocation     = errors.New("property location cannot be empty")
	ErrNonPositivePrice  = errors.New("nightly price must be positive")
	ErrNonPositiveGuests = errors.New("guest capacity must be positive")
	ErrNotOwnedByHost    = errors.New("property is not owned by this host")
)

const MaxTitleLength = 255

type Property struct {
	id                uuid.UUID
	hostID            uuid.UUID
	title             string
	description       string
	location          string
	nightlyPriceCents int64
	maxGuests         int
	amenities         []string
	imageURLs         []string
	createdAt         time.Time
	updatedAt         time.Time
}

func NewProperty(hostID uuid.UUID, title, description, location string, nightlyPriceCents int64, maxGuests int, amenities, imageURLs []string) (*Property, error) {
	title = strings.TrimSpace(title)
	location = strings.TrimSpace(location)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if location == "" {
		return nil, ErrEmptyLocation
	}
	if nightlyPriceCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if maxGuests <= 0 {
		return nil, ErrNonPositiveGuests
	}

	return &Property{
		id:                uuid.New(),
		hostID:            hostID,
		title:             title,
		description:       strings.TrimSpace(description),
		location:          location,
		nightlyPriceCents: nightlyPriceCents,
		maxGuests:         maxGuests,
		amenities:         amenities,
		imageURLs:         imageURLs,
	}, nil
}

func ReconstructProperty(id, hostID uuid.UUID, title, description, location string, nightlyPriceCents int64, maxGuests int, amenities, imageURLs []string, createdAt, updatedAt time.Time) *Property {
	return &Property{
		id:                id,
		hostID:            hostID,
		title:             title,
		description:       description,
		location:          location,
		nightlyPriceCents: nightlyPriceCents,
		maxGuests:         maxGuests,
		amenities:         amenities,
		imageURLs:         imageURLs,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (p *Property) IsOwnedBy(hostID uuid.UUID) bool {
	return p.hostID == hostID
}

func (p *Property) CanAccommodate(guests int) bool {
	return guests >= 1 && guests <= p.maxGuests
}

func (p *Property) ID() uuid.UUID            { return p.id }
func (p *Property) HostID() uuid.UUID        { return p.hostID }
func (p *Property) Title() string            { return p.title }
func (p *Property) Description() string      { return p.description }
func (p *Property) Location() string         { return p.location }
func (p *Property) NightlyPriceCents() int64 { return p.nightlyPriceCents }
func (p *Property) MaxGuests() int           { return p.maxGuests }
func (p *Property) Amenities() []string      { return p.amenities }
func (p *Property) ImageURLs() []string      { return p.imageURLs }
func (p *Property) CreatedAt() time.Time     { return p.createdAt }
func (p *Property) UpdatedAt() time.Time     { return p.updatedAt }
