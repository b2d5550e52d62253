package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, ok := ParseDate("2025-09-02")
		require.True(t, ok)
		assert.Equal(t, 2025, d.Year())
		assert.Equal(t, time.September, d.Month())
		assert.Equal(t, 2, d.Day())
	})

	t.Run("malformed input degrades instead of failing", func(t *testing.T) {
		for _, s := range []string{"", "not-a-date", "02/09/2025", "2025-9-2", "2025-09-02T10:00:00Z", "2025-13-40"} {
			_, ok := ParseDate(s)
			assert.False(t, ok, "expected %q to be unparseable", s)
		}
	})
}

func TestDaysUntil(t *testing.T) {
	today := time.Date(2025, 8, 27, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		expiry string
		days   int
		ok     bool
	}{
		{"same day", "2025-08-27", 0, true},
		{"tomorrow", "2025-08-28", 1, true},
		{"yesterday", "2025-08-26", -1, true},
		{"across month boundary", "2025-09-03", 7, true},
		{"far future", "2026-08-27", 365, true},
		{"empty", "", 0, false},
		{"malformed", "soonish", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := DaysUntil(tt.expiry, today)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.days, days)
			}
		})
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// The calendar difference must be identical at 00:00 and 23:59.
	morning := time.Date(2025, 8, 27, 0, 0, 0, 0, time.Local)
	night := time.Date(2025, 8, 27, 23, 59, 59, 0, time.Local)

	d1, ok1 := DaysUntil("2025-08-30", morning)
	d2, ok2 := DaysUntil("2025-08-30", night)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, 3, d1)
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		want Category
		name string
		days int
		ok   bool
	}{
		{CategoryUnknown, "no computable days", 0, false},
		{CategoryExpired, "negative days", -1, true},
		{CategoryUrgent, "zero days", 0, true},
		{CategoryUrgent, "upper urgent boundary", 3, true},
		{CategorySoon, "lower soon boundary", 4, true},
		{CategorySoon, "upper soon boundary", 14, true},
		{CategoryLater, "lower later boundary", 15, true},
		{CategoryLater, "far future", 400, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.days, tt.ok))
		})
	}
}

func TestSortKey(t *testing.T) {
	assert.Equal(t, -3, SortKey(-3, true))
	assert.Equal(t, 14, SortKey(14, true))

	// Unknown sorts after any real horizon.
	assert.Greater(t, SortKey(0, false), SortKey(3650, true))
}
