//go:build unit

package vacation_test

import (
	"testing"
	"time"

	"leaveflow/internal/domain/vacation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCountDays(t *testing.T) {
	t.Run("no holidays counts every calendar day inclusively", func(t *testing.T) {
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 24), nil)
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("single day range counts one", func(t *testing.T) {
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 20), nil)
		require.NoError(t, err)
		assert.Equal(t, 1, days)
	})

	t.Run("holidays inside the range are subtracted", func(t *testing.T) {
		holidays := []time.Time{day(2026, 3, 21), day(2026, 3, 23)}
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 24), holidays)
		require.NoError(t, err)
		assert.Equal(t, 3, days)
	})

	t.Run("holidays outside the range are ignored", func(t *testing.T) {
		holidays := []time.Time{day(2026, 3, 19), day(2026, 3, 25)}
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 24), holidays)
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("duplicate holiday dates count once", func(t *testing.T) {
		holidays := []time.Time{day(2026, 3, 21), day(2026, 3, 21), day(2026, 3, 21)}
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 24), holidays)
		require.NoError(t, err)
		assert.Equal(t, 4, days)
	})

	t.Run("holiday timestamps are compared by calendar day", func(t *testing.T) {
		holidays := []time.Time{time.Date(2026, 3, 21, 23, 59, 59, 0, time.UTC)}
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 24), holidays)
		require.NoError(t, err)
		assert.Equal(t, 4, days)
	})

	t.Run("range fully covered by holidays clamps at zero", func(t *testing.T) {
		holidays := []time.Time{day(2026, 3, 20), day(2026, 3, 21)}
		days, err := vacation.CountDays(day(2026, 3, 20), day(2026, 3, 21), holidays)
		require.NoError(t, err)
		assert.Equal(t, 0, days)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := vacation.CountDays(day(2026, 3, 24), day(2026, 3, 20), nil)
		require.ErrorIs(t, err, vacation.ErrInvalidRange)
	})
}
