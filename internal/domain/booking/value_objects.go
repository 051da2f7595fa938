package booking

import (
	"errors"
	"strings"
	"time"

	"stayhub/internal/domain/property"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrPastDates               = errors.New("cannot book for past dates")
	ErrEmptyCustomerName       = errors.New("customer name is required")
	ErrCustomerNameTooLong     = errors.New("customer name is too long (max 255 characters)")
)

const MaxCustomerNameLength = 255

// StayRange is the half-open [checkIn, checkOut) interval of a stay.
// Both endpoints are truncated to midnight UTC; time-of-day never
// participates in availability or pricing decisions.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayRange validates against "now" with date-only comparison: a
// check-in later today is fine, yesterday is not.
func NewStayRange(checkIn, checkOut, now time.Time) (StayRange, error) {
	checkIn = property.TruncateToDay(checkIn)
	checkOut = property.TruncateToDay(checkOut)
	today := property.TruncateToDay(now)

	if !checkIn.Before(checkOut) {
		return StayRange{}, ErrCheckOutNotAfterCheckIn
	}
	if checkIn.Before(today) || checkOut.Before(today) {
		return StayRange{}, ErrPastDates
	}

	return StayRange{checkIn: checkIn, checkOut: checkOut}, nil
}


func (s StayRange) CheckIn() time.Time {
	return s.checkIn
}

func (s StayRange) CheckOut() time.Time {
	return s.checkOut
}

// Nights is the ceiling of the stay duration in days. The strict
// check-in < check-out validation guarantees a minimum of one night.
func (s StayRange) Nights() int {
	ms := s.checkOut.Sub(s.checkIn).Milliseconds()
	const dayMs = 24 * 60 * 60 * 1000
	nights := ms / dayMs
	if ms%dayMs != 0 {
		nights++
	}
	return int(nights)
}

func (s StayRange) HasEnded(now time.Time) bool {
	return s.checkOut.Before(now)
}

func (s StayRange) ToAvailabilityRange() property.AvailabilityRange {
	r, err := property.NewAvailabilityRange(s.checkIn, s.checkOut)
	if err != nil {
		// Unreachable: StayRange is validated on construction.
		panic(err)
	}
	return r
}

type CustomerName struct {
	value string
}

func NewCustomerName(s string) (CustomerName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CustomerName{}, ErrEmptyCustomerName
	}
	if len(s) > MaxCustomerNameLength {
		return CustomerName{}, ErrCustomerNameTooLong
	}
	return CustomerName{value: s}, nil
}

func (n CustomerName) String() string {
	return n.value
}
