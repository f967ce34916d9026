package attendance

import (
	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
)

type summaryKey struct {
	workDate   string
	storeID    string
	employeeID string
}

// BuildDailySummaries folds validated events into one work-day record per
// (date, store, employee). Rejected events are ignored entirely. Against
// duplicate or out-of-order submissions that slipped past the guard (e.g.
// administrative corrections), the earliest clock-in and the latest
// clock-out win. holidays maps "YYYY-MM-DD" dates to true; it may be nil.
func BuildDailySummaries(events []attendance.Event, shifts []schedule.Shift, holidays map[string]bool) []attendance.DailySummary {
	shiftByKey := make(map[summaryKey]schedule.Shift, len(shifts))
	for _, s := range shifts {
		shiftByKey[summaryKey{s.WorkDate, s.StoreID, s.EmployeeID}] = s
	}

	grouped := make(map[summaryKey]*attendance.DailySummary)
	var order []summaryKey

	for _, ev := range events {
		if ev.Approval == attendance.ApprovalRejected {
			continue
		}

		key := summaryKey{ev.WorkDate, ev.StoreID, ev.EmployeeID}
		summary, ok := grouped[key]
		if !ok {
			summary = &attendance.DailySummary{
				WorkDate:     ev.WorkDate,
				StoreID:      ev.StoreID,
				EmployeeID:   ev.EmployeeID,
				EmployeeName: ev.EmployeeName,
			}
			grouped[key] = summary
			order = append(order, key)
		}

		occurred := ev.OccurredAt
		switch ev.Type {
		case attendance.EventClockIn:
			if summary.ClockIn == nil || occurred.Before(*summary.ClockIn) {
				t := occurred
				summary.ClockIn = &t
				summary.LateMinutes = ev.LateMinutes
			}
		case attendance.EventClockOut:
			if summary.ClockOut == nil || occurred.After(*summary.ClockOut) {
				t := occurred
				summary.ClockOut = &t
			}
			if ev.Approval == attendance.ApprovalApproved {
				summary.OvertimeMinutes += ev.OvertimeMinutes
			}
		case attendance.EventBreakEnd:
			summary.BreakMinutes += ev.BreakMinutes
		}
	}

	summaries := make([]attendance.DailySummary, 0, len(order))
	for _, key := range order {
		summary := grouped[key]
		if summary.ClockIn == nil {
			// Stray events without a clock-in do not form a work day.
			continue
		}

		if shift, ok := shiftByKey[key]; ok {
			summary.PlannedMinutes = shift.PlannedMinutes()
		}

		if summary.ClockOut == nil {
			summary.OnlyIn = true
			summary.Status = attendance.SummaryUnrecordedClockOut
		} else {
			actual := utils.SafeMinutes(summary.ClockOut.Sub(*summary.ClockIn).Minutes()) - summary.BreakMinutes
			if actual < 0 {
				actual = 0
			}
			diff := actual - summary.PlannedMinutes
			summary.ActualMinutes = &actual
			summary.DiffMinutes = &diff
			summary.Status = attendance.SummaryComplete
			summary.HolidayWork = holidays[key.workDate]
		}

		summaries = append(summaries, *summary)
	}

	return summaries
}
