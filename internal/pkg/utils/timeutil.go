package utils

import (
	"fmt"
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// ParseClock parses a time-of-day string ("HH:MM") into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// CombineDateClock builds an absolute timestamp from a calendar date, a
// time-of-day string and the site's location.
func CombineDateClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	mins, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), mins/60, mins%60, 0, 0, loc), nil
}

// SafeMinutes collapses non-finite or negative minute values to 0 so clock
// skew never propagates as NaN or a negative duration.
func SafeMinutes(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(math.Floor(f))
}

// MinutesBetween returns the whole minutes elapsed from a to b, clamped to 0
// when b precedes a.
func MinutesBetween(a, b time.Time) int {
	return SafeMinutes(b.Sub(a).Minutes())
}

// LocalDate formats t as a calendar-day string in the given location.
func LocalDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// MonthBounds returns the first day of the month and the first day of the
// next month for a "YYYY-MM" period string, both in loc.
func MonthBounds(month string, loc *time.Location) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation(MonthLayout, month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0), nil
}
