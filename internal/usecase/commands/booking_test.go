//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/property"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/shared"
	sharedmock "stayhub/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingMocks struct {
	uow          *sharedmock.MockUnitOfWork
	tx           *sharedmock.MockTx
	reads        *sharedmock.MockCommandReads
	bookings     *sharedmock.MockBookingRepository
	availability *sharedmock.MockAvailabilityRepository
}

func newBookingMocks(ctrl *gomock.Controller) *bookingMocks {
	m := &bookingMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		tx:           sharedmock.NewMockTx(ctrl),
		reads:        sharedmock.NewMockCommandReads(ctrl),
		bookings:     sharedmock.NewMockBookingRepository(ctrl),
		availability: sharedmock.NewMockAvailabilityRepository(ctrl),
	}
	m.uow.EXPECT().CommandReads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Availability().Return(m.availability).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	return m
}

func (m *bookingMocks) expectWithin() {
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
}

func fixedClock() clock.Clock {
	return clock.NewFixed(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingCommands_CreateBooking(t *testing.T) {
	ctx := context.Background()
	propertyID := uuid.New()
	hostID := uuid.New()
	guestID := uuid.New()
	bookingID := uuid.New()

	propSnap := &shared.PropertySnapshot{
		ID:                propertyID,
		HostID:            hostID,
		Title:             "Sea View Flat",
		NightlyPriceCents: 12000,
		MaxGuests:         4,
	}

	validReq := commands.CreateBookingRequest{
		PropertyID:   propertyID,
		CheckIn:      day(10),
		CheckOut:     day(13),
		Guests:       2,
		CustomerName: "Ada Lovelace",
	}

	testCases := []struct {
		name        string
		req         commands.CreateBookingRequest
		setupMock   func(m *bookingMocks)
		expectedID  uuid.UUID
		expectedErr error
	}{
		{
			name: "success: booking admitted and committed",
			req:  validReq,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(propSnap, nil)
				m.expectWithin()
				m.reads.EXPECT().CommittedRanges(gomock.Any(), propertyID).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil)
				m.availability.EXPECT().Commit(gomock.Any(), propertyID, bookingID, gomock.Any()).Return(nil)
			},
			expectedID: bookingID,
		},
		{
			name: "error: empty customer name",
			req: commands.CreateBookingRequest{
				PropertyID:   propertyID,
				CheckIn:      day(10),
				CheckOut:     day(13),
				Guests:       2,
				CustomerName: "   ",
			},
			setupMock:   func(m *bookingMocks) {},
			expectedErr: commands.ErrDomainValidation,
		},
		{
			name: "error: checkout not after checkin",
			req: commands.CreateBookingRequest{
				PropertyID:   propertyID,
				CheckIn:      day(10),
				CheckOut:     day(10),
				Guests:       2,
				CustomerName: "Ada Lovelace",
			},
			setupMock:   func(m *bookingMocks) {},
			expectedErr: commands.ErrDomainValidation,
		},
		{
			name: "error: property does not exist",
			req:  validReq,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).
					Return(nil, infra.NewRepoErr(infra.KindNotFound, "property not found", nil))
			},
			expectedErr: commands.ErrPropertyNotFound,
		},
		{
			name: "error: too many guests for the property",
			req: commands.CreateBookingRequest{
				PropertyID:   propertyID,
				CheckIn:      day(10),
				CheckOut:     day(13),
				Guests:       5,
				CustomerName: "Ada Lovelace",
			},
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(propSnap, nil)
			},
			expectedErr: commands.ErrDomainValidation,
		},
		{
			name: "error: overlapping committed range rejects the stay",
			req:  validReq,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(propSnap, nil)
				m.expectWithin()
				taken, err := property.NewAvailabilityRange(day(12), day(15))
				require.NoError(t, err)
				m.reads.EXPECT().CommittedRanges(gomock.Any(), propertyID).
					Return([]property.AvailabilityRange{taken}, nil)
			},
			expectedErr: commands.ErrDateConflict,
		},
		{
			name: "error: exclusion conflict on commit maps to date conflict",
			req:  validReq,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(propSnap, nil)
				m.expectWithin()
				m.reads.EXPECT().CommittedRanges(gomock.Any(), propertyID).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookingID, nil)
				m.availability.EXPECT().Commit(gomock.Any(), propertyID, bookingID, gomock.Any()).
					Return(infra.NewRepoErr(infra.KindConflict, "range overlaps", nil))
			},
			expectedErr: commands.ErrDateConflict,
		},
		{
			name: "error: insert failure surfaces as database error",
			req:  validReq,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().PropertyByID(ctx, propertyID).Return(propSnap, nil)
				m.expectWithin()
				m.reads.EXPECT().CommittedRanges(gomock.Any(), propertyID).Return(nil, nil)
				m.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, infra.NewRepoErr(infra.KindDBFailure, "insert failed", errors.New("boom")))
			},
			expectedErr: commands.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newBookingMocks(ctrl)
			tc.setupMock(m)
			uc := commands.NewBookingUseCase(m.uow, fixedClock())

			id, err := uc.CreateBooking(ctx, tc.req, guestID)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedID, id)
		})
	}
}

func TestBookingCommands_CreateBooking_PastCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newBookingMocks(ctrl)
	uc := commands.NewBookingUseCase(m.uow, fixedClock())

	_, err := uc.CreateBooking(context.Background(), commands.CreateBookingRequest{
		PropertyID:   uuid.New(),
		CheckIn:      time.Date(2023, 12, 20, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2023, 12, 23, 0, 0, 0, 0, time.UTC),
		Guests:       1,
		CustomerName: "Ada Lovelace",
	}, uuid.New())

	assert.ErrorIs(t, err, commands.ErrDomainValidation)
}

func TestBookingCommands_CancelBooking(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	guestID := uuid.New()
	hostID := uuid.New()
	adminID := uuid.New()
	strangerID := uuid.New()

	confirmedSnap := func() *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID:         bookingID,
			GuestID:    guestID,
			PropertyID: uuid.New(),
			HostID:     hostID,
			CheckIn:    day(10),
			CheckOut:   day(13),
			Status:     booking.StatusConfirmed.String(),
		}
	}

	testCases := []struct {
		name        string
		actorID     uuid.UUID
		actorRole   user.Role
		setupMock   func(m *bookingMocks)
		expectedErr error
	}{
		{
			name:      "success: guest cancels own booking",
			actorID:   guestID,
			actorRole: user.RoleGuest,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().BookingByID(ctx, bookingID).Return(confirmedSnap(), nil)
				m.expectWithin()
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)
				m.availability.EXPECT().Release(gomock.Any(), bookingID).Return(nil)
			},
		},
		{
			name:      "success: host cancels booking on own property",
			actorID:   hostID,
			actorRole: user.RoleHost,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().BookingByID(ctx, bookingID).Return(confirmedSnap(), nil)
				m.expectWithin()
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)
				m.availability.EXPECT().Release(gomock.Any(), bookingID).Return(nil)
			},
		},
		{
			name:      "success: admin cancels any booking",
			actorID:   adminID,
			actorRole: user.RoleAdmin,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().BookingByID(ctx, bookingID).Return(confirmedSnap(), nil)
				m.expectWithin()
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), bookingID, booking.StatusCancelled).Return(nil)
				m.availability.EXPECT().Release(gomock.Any(), bookingID).Return(nil)
			},
		},
		{
			name:      "success: cancelling an already cancelled booking is a no-op",
			actorID:   guestID,
			actorRole: user.RoleGuest,
			setupMock: func(m *bookingMocks) {
				snap := confirmedSnap()
				snap.Status = booking.StatusCancelled.String()
				m.reads.EXPECT().BookingByID(ctx, bookingID).Return(snap, nil)
			},
		},
		{
			name:      "error: unrelated user may not cancel",
			actorID:   strangerID,
			actorRole: user.RoleGuest,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().BookingByID(ctx, bookingID).Return(confirmedSnap(), nil)
			},
			expectedErr: commands.ErrNotAllowed,
		},
		{
			name:      "error: booking does not exist",
			actorID:   guestID,
			actorRole: user.RoleGuest,
			setupMock: func(m *bookingMocks) {
				m.reads.EXPECT().BookingByID(ctx, bookingID).
					Return(nil, infra.NewRepoErr(infra.KindNotFound, "booking not found", nil))
			},
			expectedErr: commands.ErrBookingNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newBookingMocks(ctrl)
			tc.setupMock(m)
			uc := commands.NewBookingUseCase(m.uow, fixedClock())

			result, err := uc.CancelBooking(ctx, bookingID, tc.actorID, tc.actorRole)

			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, bookingID, result.BookingID)
			assert.Equal(t, booking.StatusCancelled, result.Status)
		})
	}
}

func TestBookingCommands_PurgeExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	m := newBookingMocks(ctrl)
	m.expectWithin()
	m.bookings.EXPECT().PurgeCancelledBefore(gomock.Any(), now).Return(int64(3), nil)

	uc := commands.NewBookingUseCase(m.uow, clock.NewFixed(now))

	purged, err := uc.PurgeExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
