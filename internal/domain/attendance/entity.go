package attendance

import (
	"time"
)

type EventType string

const (
	EventClockIn    EventType = "clock_in"
	EventClockOut   EventType = "clock_out"
	EventBreakStart EventType = "break_start"
	EventBreakEnd   EventType = "break_end"
)

var EventTypeValues = []string{
	string(EventClockIn),
	string(EventClockOut),
	string(EventBreakStart),
	string(EventBreakEnd),
}

// Status is the schedule-derived score of a single clock event.
type Status string

const (
	StatusNormal              Status = "normal"
	StatusLate                Status = "late"
	StatusEarlyLeave          Status = "early_leave"
	StatusOvertime            Status = "overtime"
	StatusBreakNormal         Status = "break_normal"
	StatusBreakExceeded       Status = "break_exceeded"
	StatusLocationUnconfirmed Status = "location_unconfirmed"
)

// Approval is tracked independently of Status: a late event can be approved,
// a normal-looking event can still be rejected by the manager.
type Approval string

const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// Event is one validated clock event. Rows are append-only; only Approval
// (and OvertimeMinutes, when overridden during approval) are ever updated.
type Event struct {
	ID                string
	StoreID           string
	EmployeeID        string
	Type              EventType
	WorkDate          string // "YYYY-MM-DD" in the site's local time zone
	OccurredAt        time.Time
	Latitude          *float64
	Longitude         *float64
	PlannedTime       *time.Time
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	BreakMinutes      int
	Status            Status
	Approval          Approval
	ApprovedBy        *string
	ApprovedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
	StoreName    *string
}

// SummaryStatus flags a derived work day.
type SummaryStatus string

const (
	SummaryComplete           SummaryStatus = "complete"
	SummaryUnrecordedClockOut SummaryStatus = "unrecorded_clock_out"
)

// DailySummary is one derived work day per (date, store, employee). It is
// computed from the event log, never persisted.
type DailySummary struct {
	WorkDate          string
	StoreID           string
	EmployeeID        string
	ClockIn           *time.Time
	ClockOut          *time.Time
	BreakMinutes      int
	PlannedMinutes    int
	ActualMinutes     *int // nil while the clock-out is missing
	DiffMinutes       *int // actual minus planned, signed
	LateMinutes       int
	OvertimeMinutes   int // approved overtime only
	OnlyIn            bool
	HolidayWork       bool
	Status            SummaryStatus

	// Joined fields
	EmployeeName *string
}
