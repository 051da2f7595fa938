//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	GuestID           uuid.UUID
	PropertyID        uuid.UUID
	HostID            uuid.UUID
	NightlyPriceCents int64
	MaxGuests         int
	CheckIn           time.Time
	CheckOut          time.Time
	Now               time.Time
	Guests            int
	CustomerName      string
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	return &BookingBuilder{
		GuestID:           uuid.New(),
		PropertyID:        uuid.New(),
		HostID:            uuid.New(),
		NightlyPriceCents: 10000,
		MaxGuests:         4,
		CheckIn:           time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:          time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
		Now:               now,
		Guests:            2,
		CustomerName:      "Ada Lovelace",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := booking.NewStayRange(b.CheckIn, b.CheckOut, b.Now)
	if err != nil {
		return nil, err
	}
	name, err := booking.NewCustomerName(b.CustomerName)
	if err != nil {
		return nil, err
	}
	spec := booking.PropertySpec{
		ID:                b.PropertyID,
		HostID:            b.HostID,
		NightlyPriceCents: b.NightlyPriceCents,
		MaxGuests:         b.MaxGuests,
	}
	return booking.NewBooking(b.GuestID, spec, stay, b.Guests, name)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingView{
		ID:              uuid.New(),
		PropertyID:      b.PropertyID,
		PropertyTitle:   "Fjordside Cabin",
		HostID:          b.HostID,
		GuestID:         b.GuestID,
		GuestEmail:      "guest@example.com",
		CustomerName:    b.CustomerName,
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          int32(b.Guests),
		TotalPriceCents: nights * b.NightlyPriceCents,
		Status:          "confirmed",
		CreatedAt:       b.Now,
		UpdatedAt:       b.Now,
	}
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	nights := int64(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
	return &queries.BookingListItem{
		ID:              uuid.New(),
		PropertyID:      b.PropertyID,
		PropertyTitle:   "Fjordside Cabin",
		CheckIn:         b.CheckIn,
		CheckOut:        b.CheckOut,
		Guests:          int32(b.Guests),
		TotalPriceCents: nights * b.NightlyPriceCents,
		Status:          "confirmed",
		CreatedAt:       b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"property_id":   b.PropertyID.String(),
		"check_in":      b.CheckIn.Format(time.RFC3339),
		"check_out":     b.CheckOut.Format(time.RFC3339),
		"guests":        b.Guests,
		"customer_name": b.CustomerName,
	}
}
