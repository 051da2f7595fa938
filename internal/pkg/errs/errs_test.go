//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("domain validation error")

	t.Run("sentinel and cause are both on the chain", func(t *testing.T) {
		cause := errs.New("customer name is required")
		err := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(err, sentinel))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("wrapping after the mark keeps the sentinel matchable", func(t *testing.T) {
		cause := errs.New("check-in date is in the past")
		err := errs.Wrap(errs.Mark(cause, sentinel), "create booking")

		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("nil cause yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})
}
