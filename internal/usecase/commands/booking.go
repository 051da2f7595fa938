package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPropertyNotFound        = errs.New("property not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrDateConflict            = errs.New("selected dates are not available")
	ErrNotAllowed              = errs.New("not allowed to act on this resource")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingRequest struct {
	PropertyID   uuid.UUID
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	CustomerName string
}

type CancelBookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (uuid.UUID, error)
	CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) (*CancelBookingResult, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// CreateBooking admits the requested range against the property's
// committed ranges and persists the booking together with its ledger
// entry in one transaction. The availability table's exclusion
// constraint backs the admission check, so two concurrent overlapping
// requests cannot both commit: the in-transaction check is a fast
// path, the constraint is the authority.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest, guestID uuid.UUID) (uuid.UUID, error) {
	customerName, err := booking.NewCustomerName(req.CustomerName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	stay, err := booking.NewStayRange(req.CheckIn, req.CheckOut, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	propSnap, err := uc.uow.CommandReads().PropertyByID(ctx, req.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrPropertyNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := booking.NewBooking(guestID, booking.PropertySpec{
		ID:                propSnap.ID,
		HostID:            propSnap.HostID,
		NightlyPriceCents: propSnap.NightlyPriceCents,
		MaxGuests:         propSnap.MaxGuests,
	}, stay, req.Guests, customerName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		committed, derr := tx.Reads().CommittedRanges(ctx, propSnap.ID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if !property.NewLedger(committed).Admits(stay.ToAvailabilityRange()) {
			return ErrDateConflict
		}

		id, derr := tx.Bookings().Create(ctx, entity)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		if derr = tx.Availability().Commit(ctx, propSnap.ID, id, stay.ToAvailabilityRange()); derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

// CancelBooking flips the booking to cancelled and releases its ledger
// entry in the same transaction. Cancelling an already cancelled
// booking is a no-op that reports the current status.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID, actorRole user.Role) (*CancelBookingResult, error) {
	snap, err := uc.uow.CommandReads().BookingByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !canActOnBooking(snap, actorID, actorRole) {
		return nil, ErrNotAllowed
	}

	if snap.Status == booking.StatusCancelled.String() {
		return &CancelBookingResult{BookingID: snap.ID, Status: booking.StatusCancelled}, nil
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().UpdateStatus(ctx, snap.ID, booking.StatusCancelled); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		// Keyed by booking ID; absent rows are ignored so a retried
		// cancellation cannot strand the dates.
		if derr := tx.Availability().Release(ctx, snap.ID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CancelBookingResult{BookingID: snap.ID, Status: booking.StatusCancelled}, nil
}

// PurgeExpired removes cancelled bookings whose checkout has passed.
// Idempotent maintenance work with no ordering dependency on live
// traffic.
func (uc *bookingUseCaseImpl) PurgeExpired(ctx context.Context) (int64, error) {
	var purged int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, derr := tx.Bookings().PurgeCancelledBefore(ctx, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}

// Authorization is per booking: its guest and the host owning the
// booked property may act on it, admins may always act.
func canActOnBooking(snap *shared.BookingSnapshot, actorID uuid.UUID, actorRole user.Role) bool {
	switch actorRole {
	case user.RoleAdmin:
		return true
	case user.RoleGuest, user.RoleHost:
		return snap.GuestID == actorID || snap.HostID == actorID
	default:
		return false
	}
}
