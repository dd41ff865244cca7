package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{name: "zero padded month and day", date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), want: "2024-03-05"},
		{name: "double digit month and day", date: time.Date(2024, 12, 31, 23, 59, 0, 0, time.Local), want: "2024-12-31"},
		{name: "time of day is ignored", date: time.Date(2025, 1, 1, 15, 30, 0, 0, time.Local), want: "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateKey(tt.date))
		})
	}
}

func TestWeekdayOf(t *testing.T) {
	day, err := WeekdayOf("2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "monday", day)

	day, err = WeekdayOf("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, "sunday", day)

	day, err = WeekdayOf("2024-03-16")
	require.NoError(t, err)
	assert.Equal(t, "saturday", day)
}

func TestWeekdayOf_InvalidKey(t *testing.T) {
	for _, key := range []string{"", "2024-3-11", "11.03.2024", "not-a-date"} {
		_, err := WeekdayOf(key)
		assert.Error(t, err, "key %q", key)
	}
}

// Ключ даты и день недели согласованы в обе стороны для любой даты
func TestWeekdayOf_MatchesDateKeyRoundtrip(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)

	for i := 0; i < 366; i++ {
		d := start.AddDate(0, 0, i)

		day, err := WeekdayOf(DateKey(d))
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(d.Weekday().String()), day, "date %s", DateKey(d))
	}
}
