//go:build unit

package property_test

import (
	"math/rand"
	"testing"
	"time"

	"stayhub/internal/domain/property"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func mustRange(t *testing.T, start, end int) property.AvailabilityRange {
	t.Helper()
	r, err := property.NewAvailabilityRange(day(start), day(end))
	require.NoError(t, err)
	return r
}

func TestNewAvailabilityRange(t *testing.T) {
	t.Run("start must be before end", func(t *testing.T) {
		_, err := property.NewAvailabilityRange(day(3), day(3))
		assert.ErrorIs(t, err, property.ErrInvalidDateRange)

		_, err = property.NewAvailabilityRange(day(4), day(3))
		assert.ErrorIs(t, err, property.ErrInvalidDateRange)
	})

	t.Run("time of day is truncated", func(t *testing.T) {
		start := time.Date(2024, 6, 1, 15, 45, 12, 0, time.UTC)
		end := time.Date(2024, 6, 3, 7, 0, 0, 0, time.UTC)

		r, err := property.NewAvailabilityRange(start, end)
		require.NoError(t, err)

		assert.Equal(t, day(0), r.Start())
		assert.Equal(t, day(2), r.End())
	})
}

func TestAvailabilityRange_Overlaps(t *testing.T) {
	base := func(t *testing.T) property.AvailabilityRange { return mustRange(t, 5, 10) }

	testCases := []struct {
		name     string
		start    int
		end      int
		overlaps bool
	}{
		{name: "identical range", start: 5, end: 10, overlaps: true},
		{name: "contained range", start: 6, end: 8, overlaps: true},
		{name: "containing range", start: 3, end: 12, overlaps: true},
		{name: "overlapping tail", start: 8, end: 14, overlaps: true},
		{name: "overlapping head", start: 2, end: 6, overlaps: true},
		{name: "single shared night", start: 9, end: 11, overlaps: true},
		{name: "touching at start is free", start: 2, end: 5, overlaps: false},
		{name: "touching at end is free", start: 10, end: 13, overlaps: false},
		{name: "disjoint before", start: 0, end: 3, overlaps: false},
		{name: "disjoint after", start: 12, end: 15, overlaps: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.start, tc.end)
			assert.Equal(t, tc.overlaps, base(t).Overlaps(other))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, other.Overlaps(base(t)))
		})
	}
}

// Random interval pairs: Overlaps must agree with the open-interval
// test existingStart < newEnd && newStart < existingEnd.
func TestAvailabilityRange_OverlapsRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		aStart := rng.Intn(60)
		aEnd := aStart + 1 + rng.Intn(14)
		bStart := rng.Intn(60)
		bEnd := bStart + 1 + rng.Intn(14)

		a := mustRange(t, aStart, aEnd)
		b := mustRange(t, bStart, bEnd)

		want := aStart < bEnd && bStart < aEnd
		assert.Equal(t, want, a.Overlaps(b), "a=[%d,%d) b=[%d,%d)", aStart, aEnd, bStart, bEnd)
	}
}

func TestAvailabilityRange_ToDaterange(t *testing.T) {
	r := mustRange(t, 0, 2)
	assert.Equal(t, "[2024-06-01,2024-06-03)", r.ToDaterange())
}
