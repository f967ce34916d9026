package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/domain/store"
	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/utils"
)

type AttendanceServiceImpl struct {
	db        *database.DB
	eventRepo attendance.EventRepository
	shiftRepo schedule.ShiftRepository
	storeRepo store.StoreRepository
}

func NewAttendanceService(
	db *database.DB,
	eventRepo attendance.EventRepository,
	shiftRepo schedule.ShiftRepository,
	storeRepo store.StoreRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:        db,
		eventRepo: eventRepo,
		shiftRepo: shiftRepo,
		storeRepo: storeRepo,
	}
}

// SubmitEvent implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmitEvent(ctx context.Context, req attendance.SubmitEventRequest) (attendance.SubmitEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitEventResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if !user.CanAccessStore(identity.Role, identity.StoreID, req.StoreID) {
		return attendance.SubmitEventResponse{}, user.ErrStoreScopeDenied
	}

	site, err := a.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}

	loc := site.Location()
	nowUTC := time.Now().UTC()
	nowLocal := nowUTC.In(loc)
	// Day boundary in the site's local time zone, not UTC.
	workDate := utils.LocalDate(nowUTC, loc)
	eventType := attendance.EventType(req.Type)

	// Duplicate guard. Read-then-write is racy; the unique constraint in the
	// event log is the authoritative check and Create maps its violation.
	existing, err := a.eventRepo.GetForDay(ctx, req.StoreID, identity.EmployeeID, eventType, workDate)
	if err != nil {
		return attendance.SubmitEventResponse{}, fmt.Errorf("failed to check for existing event: %w", err)
	}
	if existing != nil {
		return duplicateResponse(eventType), nil
	}

	// Geofence check. A store without a reference coordinate, or a device
	// without a fix, leaves the event ungated.
	locationOk := true
	gated := false
	if site.Geofenced() && req.Latitude != nil && req.Longitude != nil {
		gated = true
		distance := utils.CalculateHaversineDistance(*req.Latitude, *req.Longitude, *site.Latitude, *site.Longitude)
		locationOk = withinFence(distance, site.RadiusMeters)
	} else {
		slog.Info("attendance event accepted without geofencing",
			"store_id", req.StoreID, "employee_id", identity.EmployeeID, "type", req.Type)
	}

	event := attendance.Event{
		StoreID:    req.StoreID,
		EmployeeID: identity.EmployeeID,
		Type:       eventType,
		WorkDate:   workDate,
		OccurredAt: nowUTC,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Status:     attendance.StatusNormal,
		Approval:   attendance.ApprovalPending,
	}

	shift, err := a.shiftRepo.GetByDate(ctx, req.StoreID, identity.EmployeeID, workDate)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if err := a.scoreAgainstShift(ctx, &event, shift, nowLocal, loc); err != nil {
		return attendance.SubmitEventResponse{}, err
	}

	// A gated-but-failed location check overrides the schedule-derived
	// status and forces manager review.
	approvalRequired := false
	if gated && !locationOk {
		event.Status = attendance.StatusLocationUnconfirmed
		approvalRequired = true
	}

	created, err := a.eventRepo.Create(ctx, event)
	if err != nil {
		if err == attendance.ErrDuplicateEvent {
			return duplicateResponse(eventType), nil
		}
		return attendance.SubmitEventResponse{}, err
	}

	resp := mapToEventResponse(created)
	return attendance.SubmitEventResponse{
		Accepted:         true,
		Status:           string(created.Status),
		ApprovalRequired: approvalRequired,
		Message:          statusMessage(created.Status),
		Event:            &resp,
	}, nil
}

// scoreAgainstShift fills the schedule-derived fields of the event in place.
// A nil shift leaves clock-in and clock-out unscored. Break duration is
// measured from the recorded break-start event, not from the plan, so it is
// captured whether or not a shift exists; only the exceeded judgment needs
// the planned window.
func (a *AttendanceServiceImpl) scoreAgainstShift(ctx context.Context, event *attendance.Event, shift *schedule.Shift, nowLocal time.Time, loc *time.Location) error {
	switch event.Type {
	case attendance.EventClockIn:
		if shift == nil {
			logUnscored(event)
			return nil
		}
		planned, err := utils.CombineDateClock(nowLocal, shift.ClockIn, loc)
		if err != nil {
			return err
		}
		event.PlannedTime = &planned
		event.Status, event.LateMinutes = scoreClockIn(nowLocal, planned)

	case attendance.EventClockOut:
		if shift == nil {
			logUnscored(event)
			return nil
		}
		planned, err := utils.CombineDateClock(nowLocal, shift.ClockOut, loc)
		if err != nil {
			return err
		}
		event.PlannedTime = &planned
		event.Status, event.EarlyLeaveMinutes, event.OvertimeMinutes = scoreClockOut(nowLocal, planned)

	case attendance.EventBreakEnd:
		breakStart, err := a.eventRepo.GetForDay(ctx, event.StoreID, event.EmployeeID, attendance.EventBreakStart, event.WorkDate)
		if err != nil {
			return fmt.Errorf("failed to look up break start: %w", err)
		}
		if breakStart == nil {
			slog.Info("break end without break start, duration not scored",
				"store_id", event.StoreID, "employee_id", event.EmployeeID, "date", event.WorkDate)
			return nil
		}
		hasPlannedBreak := shift != nil && shift.BreakStart != nil && shift.BreakEnd != nil
		plannedBreak := 0
		if shift != nil {
			plannedBreak = shift.PlannedBreakMinutes()
		}
		event.Status, event.BreakMinutes = scoreBreakEnd(nowLocal, breakStart.OccurredAt.In(loc), plannedBreak, hasPlannedBreak)
	}

	return nil
}

func logUnscored(event *attendance.Event) {
	slog.Info("no planned shift found, event recorded unscored",
		"store_id", event.StoreID, "employee_id", event.EmployeeID, "date", event.WorkDate)
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	scopeFilter(&filter, identity)

	events, err := a.eventRepo.ListRange(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, mapToEventResponse(ev))
	}
	return responses, nil
}

// DailySummaries implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailySummaries(ctx context.Context, filter attendance.ListFilter) ([]attendance.DailySummaryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	scopeFilter(&filter, identity)

	events, err := a.eventRepo.ListRange(ctx, filter)
	if err != nil {
		return nil, err
	}
	shifts, err := a.shiftRepo.ListRange(ctx, filter.From, filter.To, filter.StoreID, filter.EmployeeID)
	if err != nil {
		return nil, err
	}

	summaries := BuildDailySummaries(events, shifts, nil)
	responses := make([]attendance.DailySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, mapToSummaryResponse(s))
	}
	return responses, nil
}

// Approve implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, eventID string, req attendance.ApproveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return err
	}

	event, err := a.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !user.CanAccessStore(identity.Role, identity.StoreID, event.StoreID) {
		return user.ErrStoreScopeDenied
	}
	if event.Approval != attendance.ApprovalPending {
		return attendance.ErrAlreadyProcessed
	}

	decision := attendance.Approval(req.Decision)
	var overtimeOverride *int
	if decision == attendance.ApprovalApproved {
		overtimeOverride = req.OvertimeOverrideMinutes
	}

	return a.eventRepo.UpdateApproval(ctx, eventID, decision, identity.EmployeeID, overtimeOverride)
}

// ForceClockOut implements attendance.AttendanceService. The forced event is
// sourced from the planned clock-out time and does not retroactively
// re-score the day's clock-in.
func (a *AttendanceServiceImpl) ForceClockOut(ctx context.Context, req attendance.ForceClockOutRequest) (attendance.SubmitEventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitEventResponse{}, err
	}

	identity, err := jwt.IdentityFromContext(ctx)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if !user.CanAccessStore(identity.Role, identity.StoreID, req.StoreID) {
		return attendance.SubmitEventResponse{}, user.ErrStoreScopeDenied
	}

	clockIn, err := a.eventRepo.GetForDay(ctx, req.StoreID, req.EmployeeID, attendance.EventClockIn, req.Date)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if clockIn == nil {
		return attendance.SubmitEventResponse{}, attendance.ErrNoClockInForDay
	}

	clockOut, err := a.eventRepo.GetForDay(ctx, req.StoreID, req.EmployeeID, attendance.EventClockOut, req.Date)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if clockOut != nil {
		return attendance.SubmitEventResponse{}, attendance.ErrClockOutExists
	}

	shift, err := a.shiftRepo.GetByDate(ctx, req.StoreID, req.EmployeeID, req.Date)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	if shift == nil || shift.ClockOut == "" {
		return attendance.SubmitEventResponse{}, attendance.ErrNoPlannedClockOut
	}

	site, err := a.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}
	loc := site.Location()

	date, err := time.ParseInLocation(utils.DateLayout, req.Date, loc)
	if err != nil {
		return attendance.SubmitEventResponse{}, fmt.Errorf("invalid date: %w", err)
	}
	plannedOut, err := utils.CombineDateClock(date, shift.ClockOut, loc)
	if err != nil {
		return attendance.SubmitEventResponse{}, err
	}

	event := attendance.Event{
		StoreID:     req.StoreID,
		EmployeeID:  req.EmployeeID,
		Type:        attendance.EventClockOut,
		WorkDate:    req.Date,
		OccurredAt:  plannedOut.UTC(),
		PlannedTime: &plannedOut,
		Status:      attendance.StatusNormal,
		Approval:    attendance.ApprovalPending,
	}

	created, err := a.eventRepo.Create(ctx, event)
	if err != nil {
		if err == attendance.ErrDuplicateEvent {
			return attendance.SubmitEventResponse{}, attendance.ErrClockOutExists
		}
		return attendance.SubmitEventResponse{}, err
	}

	slog.Info("forced clock-out recorded from planned shift time",
		"store_id", req.StoreID, "employee_id", req.EmployeeID, "date", req.Date, "by", identity.EmployeeID)

	resp := mapToEventResponse(created)
	return attendance.SubmitEventResponse{
		Accepted:         true,
		Status:           string(created.Status),
		ApprovalRequired: true,
		Message:          "clock-out backfilled from planned shift time, pending approval",
		Event:            &resp,
	}, nil
}

// scopeFilter narrows a list filter to the caller's own store unless the
// caller holds the head-office role.
func scopeFilter(filter *attendance.ListFilter, identity jwt.Identity) {
	if identity.Role != user.RoleHeadOffice {
		storeID := identity.StoreID
		filter.StoreID = &storeID
	}
}

func duplicateResponse(eventType attendance.EventType) attendance.SubmitEventResponse {
	return attendance.SubmitEventResponse{
		Accepted: false,
		Message:  fmt.Sprintf("a %s event already exists for today", eventType),
	}
}

func statusMessage(status attendance.Status) string {
	switch status {
	case attendance.StatusLate:
		return "clock-in recorded as late"
	case attendance.StatusEarlyLeave:
		return "clock-out recorded as early leave"
	case attendance.StatusOvertime:
		return "clock-out recorded with overtime"
	case attendance.StatusBreakExceeded:
		return "break exceeded the planned window"
	case attendance.StatusLocationUnconfirmed:
		return "location unconfirmed, pending manager approval"
	default:
		return "event recorded"
	}
}

func mapToEventResponse(ev attendance.Event) attendance.EventResponse {
	var plannedStr *string
	if ev.PlannedTime != nil {
		s := ev.PlannedTime.Format("2006-01-02 15:04:05")
		plannedStr = &s
	}

	return attendance.EventResponse{
		ID:                ev.ID,
		StoreID:           ev.StoreID,
		StoreName:         ev.StoreName,
		EmployeeID:        ev.EmployeeID,
		EmployeeName:      ev.EmployeeName,
		Type:              string(ev.Type),
		WorkDate:          ev.WorkDate,
		OccurredAt:        ev.OccurredAt.Format(time.RFC3339),
		Latitude:          ev.Latitude,
		Longitude:         ev.Longitude,
		PlannedTime:       plannedStr,
		LateMinutes:       ev.LateMinutes,
		EarlyLeaveMinutes: ev.EarlyLeaveMinutes,
		OvertimeMinutes:   ev.OvertimeMinutes,
		BreakMinutes:      ev.BreakMinutes,
		Status:            string(ev.Status),
		Approval:          string(ev.Approval),
	}
}

func mapToSummaryResponse(s attendance.DailySummary) attendance.DailySummaryResponse {
	format := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		str := t.Format(time.RFC3339)
		return &str
	}

	return attendance.DailySummaryResponse{
		WorkDate:        s.WorkDate,
		StoreID:         s.StoreID,
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		ClockIn:         format(s.ClockIn),
		ClockOut:        format(s.ClockOut),
		BreakMinutes:    s.BreakMinutes,
		PlannedMinutes:  s.PlannedMinutes,
		ActualMinutes:   s.ActualMinutes,
		DiffMinutes:     s.DiffMinutes,
		LateMinutes:     s.LateMinutes,
		OvertimeMinutes: s.OvertimeMinutes,
		OnlyIn:          s.OnlyIn,
		Status:          string(s.Status),
	}
}
