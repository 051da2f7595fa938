package shared

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/review"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn inside a read-committed transaction, retrying on
	// serialization failures and deadlocks.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads gives command usecases non-transactional read access
	// for validation outside a transaction.
	CommandReads() CommandReads
}

// Tx exposes repositories bound to one transaction.
type Tx interface {
	Bookings() BookingRepository
	Availability() AvailabilityRepository
	Properties() PropertyRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Reads() CommandReads
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// PurgeCancelledBefore deletes cancelled bookings whose checkout
	// precedes cutoff; returns the number of rows removed.
	PurgeCancelledBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// AvailabilityRepository is the write side of the per-property ledger.
// Ranges are keyed by booking ID so release never depends on interval
// equality.
type AvailabilityRepository interface {
	// Commit inserts the booked range. The store enforces the
	// no-overlap invariant; an overlapping insert fails with a
	// conflict kind.
	Commit(ctx context.Context, propertyID, bookingID uuid.UUID, r property.AvailabilityRange) error
	// Release removes the range for a booking. Releasing an absent
	// range is a no-op, which makes cancellation retryable.
	Release(ctx context.Context, bookingID uuid.UUID) error
}

type PropertyRepository interface {
	Create(ctx context.Context, p *property.Property) (uuid.UUID, error)
	Update(ctx context.Context, p *property.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReviewRepository interface {
	Create(ctx context.Context, rev *review.Review) (uuid.UUID, error)
	Update(ctx context.Context, rev *review.Review) error
	Delete(ctx context.Context, reviewID uuid.UUID) error
}

type RatingStatsRepository interface {
	// RecalcPropertyRating recomputes the stored aggregate rating as
	// the mean over all current reviews of the property.
	RecalcPropertyRating(ctx context.Context, propertyID uuid.UUID) error
}

type CommandReads interface {
	PropertyByID(ctx context.Context, id uuid.UUID) (*PropertySnapshot, error)
	PropertyDetailByID(ctx context.Context, id uuid.UUID) (*PropertyDetailSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	ReviewByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	ReviewByPropertyAndAuthor(ctx context.Context, propertyID, authorID uuid.UUID) (*ReviewSnapshot, error)
	// HasCompletedStay reports whether the guest holds at least one
	// confirmed booking on the property with checkout strictly before
	// now.
	HasCompletedStay(ctx context.Context, guestID, propertyID uuid.UUID, now time.Time) (bool, error)
	CommittedRanges(ctx context.Context, propertyID uuid.UUID) ([]property.AvailabilityRange, error)
}
