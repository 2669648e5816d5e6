package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/backend/internal/domain/ledger"
)

func TestResolveWindows(t *testing.T) {
	now := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

	t.Run("periods list wins over date range", func(t *testing.T) {
		windows, periods, err := resolveWindows(PeriodRequest{
			Periods:   "2025-01, 2025-02",
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
		}, now)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, []ledger.Period{"2025-01", "2025-02"}, periods)
		assert.Equal(t, "2025-01", windows[0].Label())
		assert.Equal(t, "2025-02", windows[1].Label())
	})

	t.Run("single period merges with periods and dedupes", func(t *testing.T) {
		windows, periods, err := resolveWindows(PeriodRequest{
			Period:  "2025-01",
			Periods: "2025-01,2025-02",
		}, now)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, []ledger.Period{"2025-01", "2025-02"}, periods)
	})

	t.Run("periods sort chronologically", func(t *testing.T) {
		windows, periods, err := resolveWindows(PeriodRequest{
			Periods: "2025-03,2025-01",
		}, now)
		require.NoError(t, err)
		require.Len(t, windows, 2)
		assert.Equal(t, []ledger.Period{"2025-01", "2025-03"}, periods)
	})

	t.Run("date range yields one range window", func(t *testing.T) {
		windows, periods, err := resolveWindows(PeriodRequest{
			StartDate: "2025-03-01",
			EndDate:   "2025-03-31",
		}, now)
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Nil(t, periods)
		assert.Nil(t, windows[0].Period)
		assert.Equal(t, "2025-03-01", windows[0].Start.Format("2006-01-02"))
		// The end day is covered in full.
		assert.Equal(t, 31, windows[0].End.Day())
		assert.Equal(t, 23, windows[0].End.Hour())
	})

	t.Run("defaults to the current month", func(t *testing.T) {
		windows, periods, err := resolveWindows(PeriodRequest{}, now)
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Equal(t, []ledger.Period{"2025-04"}, periods)
		assert.Equal(t, "2025-04", windows[0].Label())
	})

	t.Run("rejects malformed periods", func(t *testing.T) {
		_, _, err := resolveWindows(PeriodRequest{Periods: "2025-13"}, now)
		assert.Error(t, err)
	})

	t.Run("rejects half a date range", func(t *testing.T) {
		_, _, err := resolveWindows(PeriodRequest{StartDate: "2025-03-01"}, now)
		assert.Error(t, err)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, _, err := resolveWindows(PeriodRequest{StartDate: "2025-03-31", EndDate: "2025-03-01"}, now)
		assert.Error(t, err)
	})
}
