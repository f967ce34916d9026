package response

import (
	"errors"
	"net/http"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/choongman-erp/erp-backend-go/internal/domain/holiday"
	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/choongman-erp/erp-backend-go/internal/domain/store"
	"github.com/choongman-erp/erp-backend-go/internal/domain/user"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// User / scope errors
	case errors.Is(err, user.ErrInvalidClaims):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrHeadOfficeAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrStoreScopeDenied):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateEvent):
		Conflict(w, "An event of this type already exists for today")
	case errors.Is(err, attendance.ErrInvalidEventType):
		BadRequest(w, "Invalid event type", nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")
	case errors.Is(err, attendance.ErrAlreadyProcessed):
		Conflict(w, "Attendance event already processed")
	case errors.Is(err, attendance.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, attendance.ErrNoClockInForDay):
		BadRequest(w, "No clock-in exists for that day", nil)
	case errors.Is(err, attendance.ErrClockOutExists):
		Conflict(w, "A clock-out already exists for that day")
	case errors.Is(err, attendance.ErrNoPlannedClockOut):
		BadRequest(w, "No planned clock-out time for that day", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, payroll.ErrRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrRecordConfirmed):
		Conflict(w, "Payroll record is confirmed and can no longer be modified")

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
