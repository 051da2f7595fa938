//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2024, 3, 15, 10, 20, 30, 123456000, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, gotID, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.True(t, ts.Equal(gotTime), "expected %v, got %v", ts, gotTime)
}

func TestCursor_RoundTrip_TruncatesToMicroseconds(t *testing.T) {
	id := uuid.New()
	ts := time.Date(2024, 3, 15, 10, 20, 30, 123456789, time.UTC)

	encoded := queries.EncodeAfterCursor(ts, id)
	gotTime, _, err := queries.DecodeAfterCursor(encoded)

	require.NoError(t, err)
	assert.Equal(t, ts.Truncate(time.Microsecond).UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	testCases := []struct {
		name   string
		cursor string
	}{
		{name: "empty cursor", cursor: ""},
		{name: "not base64", cursor: "!!not-base64!!"},
		{
			name:   "unknown version",
			cursor: base64.URLEncoding.EncodeToString([]byte("v9:123-" + uuid.NewString())),
		},
		{
			name:   "missing uuid part",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456")),
		},
		{
			name:   "timestamp not a number",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		},
		{
			name:   "uuid malformed",
			cursor: base64.URLEncoding.EncodeToString([]byte("v1:123456-not-a-uuid")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(tc.cursor)
			assert.Error(t, err)
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, queries.ValidateLimit(0))
	assert.Equal(t, 20, queries.ValidateLimit(-5))
	assert.Equal(t, 50, queries.ValidateLimit(50))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
