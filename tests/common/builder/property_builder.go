//go:build unit || e2e

package builder

import (
	"stayhub/internal/domain/property"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	HostID            uuid.UUID
	Title             string
	Description       string
	Location          string
	NightlyPriceCents int64
	MaxGuests         int
	Amenities         []string
	ImageURLs         []string
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		HostID:            uuid.New(),
		Title:             "Seaside Cottage",
		Description:       "Two-bedroom cottage a short walk from the beach.",
		Location:          "Lisbon",
		NightlyPriceCents: 10000,
		MaxGuests:         4,
		Amenities:         []string{"wifi", "kitchen"},
		ImageURLs:         []string{"https://cdn.example.com/cottage.jpg"},
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) WithTitle(title string) *PropertyBuilder {
	b.Title = title
	return b
}

func (b *PropertyBuilder) WithLocation(location string) *PropertyBuilder {
	b.Location = location
	return b
}

func (b *PropertyBuilder) WithNightlyPriceCents(cents int64) *PropertyBuilder {
	b.NightlyPriceCents = cents
	return b
}

func (b *PropertyBuilder) WithMaxGuests(n int) *PropertyBuilder {
	b.MaxGuests = n
	return b
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(b.HostID, b.Title, b.Description, b.Location, b.NightlyPriceCents, b.MaxGuests, b.Amenities, b.ImageURLs)
}

func (b *PropertyBuilder) BuildSpec() (uuid.UUID, int64, int) {
	return uuid.New(), b.NightlyPriceCents, b.MaxGuests
}
