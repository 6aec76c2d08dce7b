package week

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWeekStart(t *testing.T) {
	// 2025-01-06 is a known Monday; the six following dates are not.
	assert.True(t, IsWeekStart("2025-01-06"))

	following := []string{
		"2025-01-07", "2025-01-08", "2025-01-09",
		"2025-01-10", "2025-01-11", "2025-01-12",
	}
	for _, d := range following {
		assert.False(t, IsWeekStart(d), d)
	}
}

func TestIsWeekStartRejectsGarbage(t *testing.T) {
	assert.False(t, IsWeekStart(""))
	assert.False(t, IsWeekStart("not-a-date"))
	assert.False(t, IsWeekStart("2025-13-40"))
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		date string
		want time.Weekday
	}{
		{"2025-01-05", time.Sunday},
		{"2025-01-06", time.Monday},
		{"2025-01-11", time.Saturday},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := DayOfWeek(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		delta int
		want  string
	}{
		{"forward one week", "2025-01-06", 7, "2025-01-13"},
		{"back one week", "2025-01-06", -7, "2024-12-30"},
		{"across month boundary", "2025-01-31", 1, "2025-02-01"},
		{"zero offset", "2025-01-06", 0, "2025-01-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.delta)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekStartOf(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{
			name:    "monday maps to itself",
			instant: time.Date(2025, 1, 6, 12, 0, 0, 0, Zone),
			want:    "2025-01-06",
		},
		{
			name:    "sunday maps back six days",
			instant: time.Date(2025, 1, 12, 12, 0, 0, 0, Zone),
			want:    "2025-01-06",
		},
		{
			name:    "late UTC saturday is already sunday in hong kong",
			instant: time.Date(2025, 1, 11, 20, 0, 0, 0, time.UTC),
			want:    "2025-01-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStartOf(tt.instant))
		})
	}
}

func TestCivilDateCrossesMidnightBoundary(t *testing.T) {
	// 17:00 UTC is 01:00 next day in Hong Kong.
	utc := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-11", CivilDate(utc))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Mon, 2025-01-06", FormatDisplay("2025-01-06"))
	assert.Equal(t, "Sun, 2025-01-12", FormatDisplay("2025-01-12"))
	assert.Equal(t, "bogus", FormatDisplay("bogus"))
}

func TestCurrentWeekStartIsMonday(t *testing.T) {
	assert.True(t, IsWeekStart(CurrentWeekStart()))
}
