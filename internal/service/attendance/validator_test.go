package attendance

import (
	"testing"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

var plannedIn = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestWithinFenceBoundaryIsInclusive(t *testing.T) {
	assert.True(t, withinFence(0, 100))
	assert.True(t, withinFence(99.9, 100))
	assert.True(t, withinFence(100, 100), "exactly on the radius is inside")
	assert.False(t, withinFence(100.01, 100))
	assert.False(t, withinFence(250, 100))
}

func TestScoreClockIn(t *testing.T) {
	tests := []struct {
		name        string
		offset      time.Duration
		wantStatus  attendance.Status
		wantMinutes int
	}{
		{"on time", 0, attendance.StatusNormal, 0},
		{"early", -20 * time.Minute, attendance.StatusNormal, 0},
		{"within grace", 1 * time.Minute, attendance.StatusNormal, 0},
		{"just past grace", 2 * time.Minute, attendance.StatusLate, 2},
		{"late counts from planned time", 15 * time.Minute, attendance.StatusLate, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, minutes := scoreClockIn(plannedIn.Add(tt.offset), plannedIn)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMinutes, minutes)
		})
	}
}

func TestScoreClockInLatenessIsMonotonic(t *testing.T) {
	prev := 0
	for offset := 0; offset <= 180; offset += 7 {
		_, minutes := scoreClockIn(plannedIn.Add(time.Duration(offset)*time.Minute), plannedIn)
		assert.GreaterOrEqual(t, minutes, prev, "offset %d", offset)
		prev = minutes
	}
}

func TestScoreClockOut(t *testing.T) {
	plannedOut := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		offset         time.Duration
		wantStatus     attendance.Status
		wantEarlyLeave int
		wantOvertime   int
	}{
		{"on time", 0, attendance.StatusNormal, 0, 0},
		{"early leave", -25 * time.Minute, attendance.StatusEarlyLeave, 25, 0},
		{"past plan below threshold", 29 * time.Minute, attendance.StatusNormal, 0, 29},
		{"at overtime threshold", 30 * time.Minute, attendance.StatusOvertime, 0, 30},
		{"well into overtime", 95 * time.Minute, attendance.StatusOvertime, 0, 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, earlyLeave, overtime := scoreClockOut(plannedOut.Add(tt.offset), plannedOut)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantEarlyLeave, earlyLeave)
			assert.Equal(t, tt.wantOvertime, overtime)
		})
	}
}

func TestScoreBreakEnd(t *testing.T) {
	breakStart := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("within planned window", func(t *testing.T) {
		status, minutes := scoreBreakEnd(breakStart.Add(45*time.Minute), breakStart, 60, true)
		assert.Equal(t, attendance.StatusBreakNormal, status)
		assert.Equal(t, 45, minutes)
	})

	t.Run("exceeds planned window", func(t *testing.T) {
		status, minutes := scoreBreakEnd(breakStart.Add(75*time.Minute), breakStart, 60, true)
		assert.Equal(t, attendance.StatusBreakExceeded, status)
		assert.Equal(t, 75, minutes)
	})

	t.Run("no planned break is recorded but not judged", func(t *testing.T) {
		status, minutes := scoreBreakEnd(breakStart.Add(90*time.Minute), breakStart, 0, false)
		assert.Equal(t, attendance.StatusNormal, status)
		assert.Equal(t, 90, minutes)
	})
}
