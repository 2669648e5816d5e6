package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := ParsePeriod("2025-03")
		require.NoError(t, err)
		assert.Equal(t, Period("2025-03"), p)
	})

	t.Run("invalid forms rejected", func(t *testing.T) {
		for _, s := range []string{"2025-13", "2025-0", "202503", "2025-3", "03-2025", "abc", ""} {
			_, err := ParsePeriod(s)
			assert.Error(t, err, "input %q", s)
		}
	})
}

func TestParsePeriods(t *testing.T) {
	t.Run("comma separated input is normalized", func(t *testing.T) {
		periods, err := ParsePeriods([]string{"2025-01,2025-02", "2025-03"})
		require.NoError(t, err)
		assert.Equal(t, []Period{"2025-01", "2025-02", "2025-03"}, periods)
	})

	t.Run("empty segments skipped", func(t *testing.T) {
		periods, err := ParsePeriods([]string{"2025-01,", " "})
		require.NoError(t, err)
		assert.Equal(t, []Period{"2025-01"}, periods)
	})

	t.Run("one bad entry fails the whole list", func(t *testing.T) {
		_, err := ParsePeriods([]string{"2025-01,nope"})
		assert.Error(t, err)
	})
}

func TestPeriod_Bounds(t *testing.T) {
	p := Period("2025-02")
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.Start())
	assert.Equal(t, 28, p.End().Day())
	assert.Equal(t, time.February, p.End().Month())
}

func TestPeriodOf(t *testing.T) {
	assert.Equal(t, Period("2024-12"), PeriodOf(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, "10.01", RoundMoney(decimal.RequireFromString("10.005")).StringFixed(2))
	assert.Equal(t, "10.00", RoundMoney(decimal.RequireFromString("10.004")).StringFixed(2))
}
