package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPlannedMinutes(t *testing.T) {
	shift := Shift{ClockIn: "09:00", ClockOut: "18:00"}
	assert.Equal(t, 540, shift.PlannedMinutes())

	shift.BreakStart = strPtr("12:00")
	shift.BreakEnd = strPtr("13:00")
	assert.Equal(t, 480, shift.PlannedMinutes())
}

func TestPlannedMinutesMalformedTimes(t *testing.T) {
	assert.Equal(t, 0, Shift{ClockIn: "9am", ClockOut: "18:00"}.PlannedMinutes())
	assert.Equal(t, 0, Shift{ClockIn: "18:00", ClockOut: "09:00"}.PlannedMinutes())
	assert.Equal(t, 0, Shift{}.PlannedMinutes())
}

func TestPlannedBreakMinutes(t *testing.T) {
	shift := Shift{ClockIn: "09:00", ClockOut: "18:00"}
	assert.Equal(t, 0, shift.PlannedBreakMinutes())

	shift.BreakStart = strPtr("12:00")
	shift.BreakEnd = strPtr("12:45")
	assert.Equal(t, 45, shift.PlannedBreakMinutes())

	shift.BreakEnd = strPtr("11:00")
	assert.Equal(t, 0, shift.PlannedBreakMinutes(), "inverted window counts as none")
}
