package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTooManyGuests = errors.New("guest count exceeds property capacity")
	ErrNoGuests      = errors.New("guest count must be at least 1")
)

// PropertySpec is the slice of a property a booking needs to be priced
// and capacity-checked.
type PropertySpec struct {
	ID                uuid.UUID
	HostID            uuid.UUID
	NightlyPriceCents int64
	MaxGuests         int
}

type Booking struct {
	id              uuid.UUID
	guestID         uuid.UUID
	propertyID      uuid.UUID
	stay            StayRange
	guests          int
	customerName    CustomerName
	totalPriceCents int64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a confirmed booking. Total price is the nightly
// price times the number of nights; admission against the property's
// committed ranges is the caller's responsibility.
func NewBooking(guestID uuid.UUID, prop PropertySpec, stay StayRange, guests int, customerName CustomerName) (*Booking, error) {
	if guests < 1 {
		return nil, ErrNoGuests
	}
	if guests > prop.MaxGuests {
		return nil, ErrTooManyGuests
	}

	return &Booking{
		id:              uuid.New(),
		guestID:         guestID,
		propertyID:      prop.ID,
		stay:            stay,
		guests:          guests,
		customerName:    customerName,
		totalPriceCents: prop.NightlyPriceCents * int64(stay.Nights()),
		status:          StatusConfirmed,
	}, nil
}


// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking is a no-op; cancellation is terminal.
func (b *Booking) Cancel() Status {
	b.status = StatusCancelled
	return b.status
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) IsConfirmed() bool {
	return b.status == StatusConfirmed
}

// IsCompletedStay reports whether the guest has finished a confirmed
// stay: checked out strictly before now and never cancelled.
func (b *Booking) IsCompletedStay(now time.Time) bool {
	return b.status == StatusConfirmed && b.stay.HasEnded(now)
}

func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) GuestID() uuid.UUID         { return b.guestID }
func (b *Booking) PropertyID() uuid.UUID      { return b.propertyID }
func (b *Booking) Stay() StayRange            { return b.stay }
func (b *Booking) Guests() int                { return b.guests }
func (b *Booking) CustomerName() CustomerName { return b.customerName }
func (b *Booking) TotalPriceCents() int64     { return b.totalPriceCents }
func (b *Booking) Status() Status             { return b.status }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }
