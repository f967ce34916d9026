package attendance

import (
	"github.com/choongman-erp/erp-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SubmitEventRequest struct {
	StoreID   string   `json:"store_id"`
	Type      string   `json:"type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *SubmitEventRequest) Validate() error {
	if !validator.IsInSlice(r.Type, EventTypeValues) {
		return ErrInvalidEventType
	}

	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	// A device either reports a full coordinate or none at all.
	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be submitted together",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitEventResponse tells the caller the definite outcome of a submission:
// accepted-and-scored, accepted-pending-approval, or rejected-as-duplicate.
type SubmitEventResponse struct {
	Accepted         bool           `json:"accepted"`
	Status           string         `json:"status"`
	ApprovalRequired bool           `json:"approval_required"`
	Message          string         `json:"message"`
	Event            *EventResponse `json:"event,omitempty"`
}

type EventResponse struct {
	ID                string   `json:"id"`
	StoreID           string   `json:"store_id"`
	StoreName         *string  `json:"store_name,omitempty"`
	EmployeeID        string   `json:"employee_id"`
	EmployeeName      *string  `json:"employee_name,omitempty"`
	Type              string   `json:"type"`
	WorkDate          string   `json:"work_date"`
	OccurredAt        string   `json:"occurred_at"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	PlannedTime       *string  `json:"planned_time,omitempty"`
	LateMinutes       int      `json:"late_minutes"`
	EarlyLeaveMinutes int      `json:"early_leave_minutes"`
	OvertimeMinutes   int      `json:"overtime_minutes"`
	BreakMinutes      int      `json:"break_minutes"`
	Status            string   `json:"status"`
	Approval          string   `json:"approval"`
}

type ListFilter struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	StoreID    *string `json:"store_id"`
	EmployeeID *string `json:"employee_id"`
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(f.From); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be a YYYY-MM-DD date",
		})
	}

	if _, ok := validator.IsValidDate(f.To); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be a YYYY-MM-DD date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveRequest struct {
	Decision                string `json:"decision"` // "approved" | "rejected"
	OvertimeOverrideMinutes *int   `json:"overtime_override_minutes"`
}

func (r *ApproveRequest) Validate() error {
	if r.Decision != string(ApprovalApproved) && r.Decision != string(ApprovalRejected) {
		return ErrInvalidDecision
	}

	if r.OvertimeOverrideMinutes != nil && *r.OvertimeOverrideMinutes < 0 {
		return validator.ValidationErrors{{
			Field:   "overtime_override_minutes",
			Message: "overtime_override_minutes must not be negative",
		}}
	}

	return nil
}

type ForceClockOutRequest struct {
	Date       string `json:"date"`
	StoreID    string `json:"store_id"`
	EmployeeID string `json:"employee_id"`
}

func (r *ForceClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a YYYY-MM-DD date",
		})
	}

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DailySummaryResponse struct {
	WorkDate        string  `json:"work_date"`
	StoreID         string  `json:"store_id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	ClockIn         *string `json:"clock_in,omitempty"`
	ClockOut        *string `json:"clock_out,omitempty"`
	BreakMinutes    int     `json:"break_minutes"`
	PlannedMinutes  int     `json:"planned_minutes"`
	ActualMinutes   *int    `json:"actual_minutes,omitempty"`
	DiffMinutes     *int    `json:"diff_minutes,omitempty"`
	LateMinutes     int     `json:"late_minutes"`
	OvertimeMinutes int     `json:"overtime_minutes"`
	OnlyIn          bool    `json:"only_in"`
	Status          string  `json:"status"`
}
