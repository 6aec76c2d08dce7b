// Package week computes canonical week identities in the fixed Hong Kong
// civil calendar. Every weekly record is keyed by the Monday of its week, and
// every date comparison in the system routes through this package rather than
// ad-hoc arithmetic, so users not colocated with the tracker's timezone see
// consistent week boundaries.
package week

import (
	"fmt"
	"time"
)

// DateLayout is the civil date format used throughout the persisted data.
const DateLayout = "2006-01-02"

// Zone is the fixed civil timezone all week identities are computed in.
var Zone = mustLoadZone()

func mustLoadZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Hong_Kong")
	if err != nil {
		// Hong Kong has a fixed UTC+8 offset; fall back when the host
		// has no tzdata.
		return time.FixedZone("HKT", 8*60*60)
	}
	return loc
}

// CivilDate returns the calendar date of the instant t in the fixed timezone.
func CivilDate(t time.Time) string {
	return t.In(Zone).Format(DateLayout)
}

// parse interprets a civil date string as midnight in the fixed timezone.
func parse(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, Zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid civil date %q: %w", date, err)
	}
	return t, nil
}

// DayOfWeek returns the day of week of a civil date, Sunday=0 through
// Saturday=6 (time.Weekday numbering).
func DayOfWeek(date string) (time.Weekday, error) {
	t, err := parse(date)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// AddDays offsets a civil date by delta days, honoring timezone-local
// midnight boundaries.
func AddDays(date string, delta int) (string, error) {
	t, err := parse(date)
	if err != nil {
		return "", err
	}
	return CivilDate(t.Add(time.Duration(delta) * 24 * time.Hour)), nil
}

// WeekStartOf returns the Monday on or before the civil date of the instant t.
func WeekStartOf(t time.Time) string {
	local := t.In(Zone)
	back := (int(local.Weekday()) + 6) % 7
	return CivilDate(local.Add(-time.Duration(back) * 24 * time.Hour))
}

// CurrentWeekStart returns the Monday on or before today's civil date.
func CurrentWeekStart() string {
	return WeekStartOf(time.Now())
}

// IsWeekStart reports whether date is the Monday of its week. Unparseable
// dates are not week starts.
func IsWeekStart(date string) bool {
	dow, err := DayOfWeek(date)
	if err != nil {
		return false
	}
	return dow == time.Monday
}

// FormatDisplay renders a civil date with its weekday name, e.g.
// "Mon, 2025-01-06". Unparseable dates are returned unchanged.
func FormatDisplay(date string) string {
	t, err := parse(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %s", t.Format("Mon"), date)
}
