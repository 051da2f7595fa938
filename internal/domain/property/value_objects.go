package property

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidDateRange = errors.New("start date must be before end date")

// AvailabilityRange is a half-open interval [start, end) of committed
// (booked) nights. Dates are normalized to midnight UTC.
type AvailabilityRange struct {
	start time.Time
	end   time.Time
}

func NewAvailabilityRange(start, end time.Time) (AvailabilityRange, error) {
	start = TruncateToDay(start)
	end = TruncateToDay(end)
	if !start.Before(end) {
		return AvailabilityRange{}, ErrInvalidDateRange
	}
	return AvailabilityRange{start: start, end: end}, nil
}

func (r AvailabilityRange) Start() time.Time {
	return r.start
}

func (r AvailabilityRange) End() time.Time {
	return r.end
}

// Overlaps reports whether two half-open ranges share at least one night.
// Touching endpoints (one range ends where the other starts) do not overlap.
func (r AvailabilityRange) Overlaps(other AvailabilityRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r AvailabilityRange) Equal(other AvailabilityRange) bool {
	return r.start.Equal(other.start) && r.end.Equal(other.end)
}

func (r AvailabilityRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format("2006-01-02"), r.end.Format("2006-01-02"))
}

func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
