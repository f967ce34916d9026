package attendance

import (
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
)

const (
	// A clock-in counts as late only past this grace on the planned time.
	lateGraceMinutes = 1

	// A clock-out past plan becomes an overtime event at this threshold.
	overtimeThresholdMinutes = 30
)

// withinFence applies the inclusive geofence boundary: exactly on the radius
// is still inside.
func withinFence(distanceMeters float64, radiusMeters int) bool {
	return distanceMeters <= float64(radiusMeters)
}

// scoreClockIn compares the actual clock-in against the planned time.
// Lateness is measured from the planned time itself, not from the grace
// limit, and is never negative.
func scoreClockIn(now, planned time.Time) (attendance.Status, int) {
	if now.After(planned.Add(lateGraceMinutes * time.Minute)) {
		return attendance.StatusLate, utils.MinutesBetween(planned, now)
	}
	return attendance.StatusNormal, 0
}

// scoreClockOut compares the actual clock-out against the planned time and
// returns the status plus early-leave and overtime minutes.
func scoreClockOut(now, planned time.Time) (attendance.Status, int, int) {
	if now.Before(planned) {
		return attendance.StatusEarlyLeave, utils.MinutesBetween(now, planned), 0
	}

	overtime := utils.MinutesBetween(planned, now)
	if overtime >= overtimeThresholdMinutes {
		return attendance.StatusOvertime, 0, overtime
	}
	return attendance.StatusNormal, 0, overtime
}

// scoreBreakEnd measures the actual break against the planned window. When
// the shift has no planned break the duration is still recorded but not
// judged.
func scoreBreakEnd(now, breakStart time.Time, plannedBreakMinutes int, hasPlannedBreak bool) (attendance.Status, int) {
	breakMinutes := utils.MinutesBetween(breakStart, now)
	if !hasPlannedBreak {
		return attendance.StatusNormal, breakMinutes
	}
	if breakMinutes > plannedBreakMinutes {
		return attendance.StatusBreakExceeded, breakMinutes
	}
	return attendance.StatusBreakNormal, breakMinutes
}
