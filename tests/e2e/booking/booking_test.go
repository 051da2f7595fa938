//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"stayhub/internal/handler/dto/request"
	"stayhub/internal/handler/dto/response"
	"stayhub/tests/common/authtest"
	"stayhub/tests/common/dbtest"
	"stayhub/tests/common/httptest"
	"stayhub/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	purgeURL    = "/api/bookings/purge-expired"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// futureStay returns a check-in/check-out pair n days from now, at
// midnight UTC so nightly price math is exact.
func futureStay(daysAhead, nights int) (time.Time, time.Time) {
	checkIn := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, daysAhead)
	return checkIn, checkIn.AddDate(0, 0, nights)
}

func createBookingRequest(propertyID uuid.UUID, checkIn, checkOut time.Time) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		PropertyID:   propertyID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       2,
		CustomerName: "Ada Lovelace",
	}
}

// =============================================================================
// TestCreateBooking
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: guest books free dates and gets the priced booking back", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkIn, checkOut), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		expected := &response.BookingResponse{
			PropertyID:      propertyID,
			PropertyTitle:   "Fjordside Cabin",
			HostID:          hostID,
			GuestEmail:      "guest@example.com",
			CustomerName:    "Ada Lovelace",
			Guests:          2,
			TotalPriceCents: 3 * 12000,
			Status:          "confirmed",
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{},
				"ID", "GuestID", "CheckIn", "CheckOut", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}

		// The detail endpoint shows the same booking to its guest
		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			bookingsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code, dw.Body.String())
	})

	s.Run("Error case: overlapping dates on the same property conflict", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkIn, checkOut), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Second stay starting one night before the first ends
		overlapIn := checkIn.AddDate(0, 0, 2)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, overlapIn, overlapIn.AddDate(0, 0, 3)), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "not available")

		// Back-to-back stay (check-in on the other's check-out) is fine
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkOut, checkOut.AddDate(0, 0, 2)), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Race case: exactly one of two concurrent overlapping creates wins", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)

		tokenA := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-a@example.com", "guest")
		tokenB := authtest.CreateAndLogin(t, s.DB, s.Router, "racer-b@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		reqBody := createBookingRequest(propertyID, checkIn, checkOut)

		codes := make(chan int, 2)
		var wg sync.WaitGroup
		for _, token := range []string{tokenA, tokenB} {
			wg.Add(1)
			go func(tok string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, tok)
				codes <- w.Code
			}(token)
		}
		wg.Wait()
		close(codes)

		var got []int
		for code := range codes {
			got = append(got, code)
		}
		require.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got,
			"exactly one concurrent create must win")
	})

	s.Run("Error case: invalid stays are rejected before touching the ledger", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 2)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)

		// check-out before check-in
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkOut, checkIn), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		// check-in in the past
		pastIn := time.Now().UTC().AddDate(0, 0, -10)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, pastIn, pastIn.AddDate(0, 0, 2)), token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		// party larger than the property allows
		req := createBookingRequest(propertyID, checkIn, checkOut)
		req.Guests = 5
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		// unknown property
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(uuid.New(), checkIn, checkOut), token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Property not found")
	})
}

// =============================================================================
// TestGetBooking
// =============================================================================

func (s *BookingSuite) TestGetBooking() {
	s.Run("Error case: a stranger is refused", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkIn, checkOut), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		url := bookingsURL + "/" + created.ID.String()

		// Host of the property sees it
		hostToken := authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "guest")
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Access denied")
	})
}

// =============================================================================
// TestCancelBooking
// =============================================================================

func (s *BookingSuite) TestCancelBooking() {
	s.Run("Normal case: cancelling releases the dates for rebooking", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		reqBody := createBookingRequest(propertyID, checkIn, checkOut)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cancelURL := bookingsURL + "/" + created.ID.String() + "/cancel"
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var cancelled response.CancelBookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &cancelled))
		require.Equal(t, "cancelled", cancelled.Status)

		// Cancelling again is a no-op with the same answer
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cancelURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// The released range can be booked again
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Normal case: the property host may cancel a received booking", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkIn, checkOut), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		hostToken := authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Error case: a stranger may not cancel", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			createBookingRequest(propertyID, checkIn, checkOut), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var created response.BookingResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "stranger@example.com", "guest")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost,
			bookingsURL+"/"+created.ID.String()+"/cancel", nil, strangerToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Not allowed")
	})
}

// =============================================================================
// TestListBookings
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: guest pages through own bookings", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		for i := range 3 {
			checkIn, checkOut := futureStay(30+i*10, 3)
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
				createBookingRequest(propertyID, checkIn, checkOut), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page response.BookingPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s?limit=2&after=%s", bookingsURL, page.NextCursor), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var rest response.BookingPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &rest))
		require.Len(t, rest.Items, 1)
		require.Empty(t, rest.NextCursor)
		require.NotEqual(t, page.Items[0].ID, rest.Items[0].ID)
	})

	s.Run("Normal case: host lists bookings across owned properties", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		cabinID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		loftID := dbtest.CreateTestProperty(t, s.DB, hostID, "Harbour Loft", 20000, 2)
		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")

		checkIn, checkOut := futureStay(30, 3)
		for _, propertyID := range []uuid.UUID{cabinID, loftID} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
				createBookingRequest(propertyID, checkIn, checkOut), guestToken)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		hostToken := authtest.LoginUser(t, s.Router, "host@example.com", dbtest.TestPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/received", nil, hostToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var page response.BookingPageResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Items, 2)

		// Guests cannot use the host listing
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/received", nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestPurgeExpired
// =============================================================================

func (s *BookingSuite) TestPurgeExpired() {
	s.Run("Normal case: only past-checkout cancelled bookings are purged", func() {
		t := s.T()

		hostID := dbtest.CreateTestUser(t, s.DB, "host@example.com", "host")
		propertyID := dbtest.CreateTestProperty(t, s.DB, hostID, "Fjordside Cabin", 12000, 4)
		guestID := dbtest.CreateTestUser(t, s.DB, "guest@example.com", "guest")

		now := time.Now().UTC().Truncate(24 * time.Hour)
		// should be purged: cancelled, checkout long past
		purgeable := dbtest.CreateTestBooking(t, s.DB, propertyID, guestID,
			now.AddDate(0, 0, -20), now.AddDate(0, 0, -17), "cancelled")
		// kept: cancelled but checkout still ahead
		futureCancelled := dbtest.CreateTestBooking(t, s.DB, propertyID, guestID,
			now.AddDate(0, 0, 10), now.AddDate(0, 0, 13), "cancelled")
		// kept: past stay that was never cancelled
		pastConfirmed := dbtest.CreateTestBooking(t, s.DB, propertyID, guestID,
			now.AddDate(0, 0, -10), now.AddDate(0, 0, -7), "confirmed")

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purgeURL, nil, adminToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var purged response.PurgeExpiredResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &purged))
		require.Equal(t, int64(1), purged.Purged)

		var remaining []uuid.UUID
		rows, err := s.DB.Query(t.Context(), "SELECT id FROM bookings ORDER BY created_at")
		require.NoError(t, err)
		defer rows.Close()
		for rows.Next() {
			var id uuid.UUID
			require.NoError(t, rows.Scan(&id))
			remaining = append(remaining, id)
		}
		require.NoError(t, rows.Err())
		require.ElementsMatch(t, []uuid.UUID{futureCancelled, pastConfirmed}, remaining)
		require.NotContains(t, remaining, purgeable)
	})

	s.Run("Error case: purge is admin-only", func() {
		t := s.T()

		guestToken := authtest.CreateAndLogin(t, s.DB, s.Router, "guest@example.com", "guest")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, purgeURL, nil, guestToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
