package property

import "errors"

var (
	ErrRangeUnavailable = errors.New("date range overlaps a committed range")
	ErrRangeNotFound    = errors.New("no committed range matches")
)

// Ledger holds the committed date ranges of a single property.
// Invariant: no two committed ranges overlap.
type Ledger struct {
	ranges []AvailabilityRange
}

func NewLedger(ranges []AvailabilityRange) *Ledger {
	return &Ledger{ranges: ranges}
}

// Admits reports whether the candidate range can be committed without
// conflicting with any committed range.
func (l *Ledger) Admits(candidate AvailabilityRange) bool {
	for _, committed := range l.ranges {
		if committed.Overlaps(candidate) {
			return false
		}
	}
	return true
}

// Commit appends the range after an admission check. The ledger invariant
// holds after every successful commit.
func (l *Ledger) Commit(candidate AvailabilityRange) error {
	if !l.Admits(candidate) {
		return ErrRangeUnavailable
	}
	l.ranges = append(l.ranges, candidate)
	return nil
}

// Release removes the committed range exactly matching the argument.
// Releasing a range that is not present returns ErrRangeNotFound so the
// caller can decide whether drift is tolerable.
func (l *Ledger) Release(r AvailabilityRange) error {
	for i, committed := range l.ranges {
		if committed.Equal(r) {
			l.ranges = append(l.ranges[:i], l.ranges[i+1:]...)
			return nil
		}
	}
	return ErrRangeNotFound
}

func (l *Ledger) Ranges() []AvailabilityRange {
	out := make([]AvailabilityRange, len(l.ranges))
	copy(out, l.ranges)
	return out
}
