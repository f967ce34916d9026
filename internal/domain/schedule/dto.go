package schedule

import (
	"github.com/choongman-erp/erp-backend-go/internal/pkg/validator"
)

type ShiftListFilter struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	StoreID    *string `json:"store_id"`
	EmployeeID *string `json:"employee_id"`
}

func (f *ShiftListFilter) Validate() error {
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

type UpsertShiftRequest struct {
	StoreID    string  `json:"store_id"`
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	ClockIn    string  `json:"clock_in"`
	ClockOut   string  `json:"clock_out"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be a YYYY-MM-DD date",
		})
	}

	if !validator.IsValidClock(r.ClockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_in",
			Message: "clock_in must be an HH:MM time",
		})
	}

	if !validator.IsValidClock(r.ClockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "clock_out",
			Message: "clock_out must be an HH:MM time",
		})
	}

	// Shifts are single-day: a plan that would cross midnight is rejected
	// rather than silently scored as zero planned minutes.
	if validator.IsValidClock(r.ClockIn) && validator.IsValidClock(r.ClockOut) {
		in, _ := parseClockMinutes(r.ClockIn)
		out, _ := parseClockMinutes(r.ClockOut)
		if out <= in {
			errs = append(errs, validator.ValidationError{
				Field:   "clock_out",
				Message: "clock_out must be after clock_in; overnight shifts are not supported",
			})
		}
	}

	// A break window is either fully planned or absent.
	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start and break_end must be submitted together",
		})
	}

	if r.BreakStart != nil && !validator.IsValidClock(*r.BreakStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_start",
			Message: "break_start must be an HH:MM time",
		})
	}

	if r.BreakEnd != nil && !validator.IsValidClock(*r.BreakEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_end",
			Message: "break_end must be an HH:MM time",
		})
	}

	if r.BreakStart != nil && r.BreakEnd != nil &&
		validator.IsValidClock(*r.BreakStart) && validator.IsValidClock(*r.BreakEnd) {
		start, _ := parseClockMinutes(*r.BreakStart)
		end, _ := parseClockMinutes(*r.BreakEnd)
		if end <= start {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be after break_start",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID             string  `json:"id"`
	StoreID        string  `json:"store_id"`
	EmployeeID     string  `json:"employee_id"`
	WorkDate       string  `json:"work_date"`
	ClockIn        string  `json:"clock_in"`
	ClockOut       string  `json:"clock_out"`
	BreakStart     *string `json:"break_start,omitempty"`
	BreakEnd       *string `json:"break_end,omitempty"`
	PlannedMinutes int     `json:"planned_minutes"`
}
