//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"stayhub/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind every fixture account.
const TestPassword = "password123"

// DBLike is the subset of the pgx pool API the fixtures need, so the
// helpers also accept transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var (
	hashOnce     sync.Once
	passwordHash string
)

func fixturePasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(TestPassword)
		require.NoError(t, err)
		passwordHash = h
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (lower(email)) DO NOTHING",
		userID, "Fixture "+role, email, fixturePasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE lower(email) = lower($1)", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestProperty(t *testing.T, db DBLike, hostID uuid.UUID, title string, nightlyPriceCents int64, maxGuests int) uuid.UUID {
	t.Helper()

	propertyID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO properties (id, host_id, title, description, location, nightly_price_cents, max_guests) VALUES ($1, $2, $3, '', 'Bergen, Norway', $4, $5)",
		propertyID, hostID, title, nightlyPriceCents, maxGuests)
	require.NoError(t, err)

	return propertyID
}

// CreateTestBooking inserts a booking row directly, bypassing the API
// so tests can fabricate stays in the past. Confirmed bookings also get
// their availability ledger row.
func CreateTestBooking(t *testing.T, db DBLike, propertyID, guestID uuid.UUID, checkIn, checkOut time.Time, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	_, err := db.Exec(ctx,
		"INSERT INTO bookings (id, property_id, guest_id, customer_name, check_in, check_out, guests, total_price_cents, status) VALUES ($1, $2, $3, 'Fixture Guest', $4, $5, 2, $6, $7)",
		bookingID, propertyID, guestID, checkIn, checkOut, nights*10000, status)
	require.NoError(t, err)

	if status == "confirmed" {
		_, err = db.Exec(ctx,
			"INSERT INTO property_availability (booking_id, property_id, during) VALUES ($1, $2, daterange($3::date, $4::date, '[)'))",
			bookingID, propertyID, checkIn, checkOut)
		require.NoError(t, err)
	}

	return bookingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT LIKE 'goose_%'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
