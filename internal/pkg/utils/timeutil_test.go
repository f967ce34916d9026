package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 570, mins)

	mins, err = ParseClock("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, mins)

	_, err = ParseClock("9:30am")
	assert.Error(t, err)

	_, err = ParseClock("25:00")
	assert.Error(t, err)
}

func TestCombineDateClock(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, bangkok)
	ts, err := CombineDateClock(date, "09:00", bangkok)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 3, 10, 9, 0, 0, 0, bangkok), ts)
	// 09:00 Bangkok is 02:00 UTC.
	assert.Equal(t, 2, ts.UTC().Hour())
}

func TestSafeMinutes(t *testing.T) {
	assert.Equal(t, 0, SafeMinutes(math.NaN()))
	assert.Equal(t, 0, SafeMinutes(math.Inf(1)))
	assert.Equal(t, 0, SafeMinutes(math.Inf(-1)))
	assert.Equal(t, 0, SafeMinutes(-0.5))
	assert.Equal(t, 0, SafeMinutes(-100))
	assert.Equal(t, 0, SafeMinutes(0))
	assert.Equal(t, 42, SafeMinutes(42.9))
}

func TestMinutesBetween(t *testing.T) {
	a := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, MinutesBetween(a, a.Add(90*time.Minute)))
	assert.Equal(t, 0, MinutesBetween(a, a))
	// Reversed arguments clamp to zero instead of going negative.
	assert.Equal(t, 0, MinutesBetween(a.Add(time.Hour), a))
}

func TestLocalDateCrossesMidnight(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	require.NoError(t, err)

	// 18:30 UTC on March 10 is already March 11 in Bangkok (UTC+7).
	utc := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-11", LocalDate(utc, bangkok))
	assert.Equal(t, "2025-03-10", LocalDate(utc, time.UTC))
}

func TestMonthBounds(t *testing.T) {
	start, next, err := MonthBounds("2025-02", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), next)

	start, next, err = MonthBounds("2024-12", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), next)

	_, _, err = MonthBounds("2025-13", time.UTC)
	assert.Error(t, err)
	_, _, err = MonthBounds("March 2025", time.UTC)
	assert.Error(t, err)
}
