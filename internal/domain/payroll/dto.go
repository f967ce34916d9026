package payroll

import (
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// PAYROLL DTOs
// ========================================

type PreviewRequest struct {
	Month   string  `json:"month"` // "YYYY-MM"
	StoreID *string `json:"store_id"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a YYYY-MM period",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LineInput is a preview line coming back for persistence, possibly with the
// manually editable fields adjusted.
type LineInput struct {
	StoreID           string          `json:"store_id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	PayType           string          `json:"pay_type"`
	WorkedMinutes     int             `json:"worked_minutes"`
	LateMinutes       int             `json:"late_minutes"`
	OvertimeMinutes   int             `json:"overtime_minutes"`
	HolidayDays       int             `json:"holiday_days"`
	BasePay           decimal.Decimal `json:"base_pay"`
	PositionAllowance decimal.Decimal `json:"position_allowance"`
	HazardAllowance   decimal.Decimal `json:"hazard_allowance"`
	BirthdayBonus     decimal.Decimal `json:"birthday_bonus"`
	SpecialBonus      decimal.Decimal `json:"special_bonus"`
	HolidayPay        decimal.Decimal `json:"holiday_pay"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	LateDeduction     decimal.Decimal `json:"late_deduction"`
	SocialSecurity    decimal.Decimal `json:"social_security"`
	Tax               decimal.Decimal `json:"tax"`
	OtherDeduction    decimal.Decimal `json:"other_deduction"`
}

type SaveRequest struct {
	Month string      `json:"month"`
	Lines []LineInput `json:"lines"`
}

func (r *SaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a YYYY-MM period",
		})
	}

	if len(r.Lines) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "lines",
			Message: "at least one payroll line is required",
		})
	}

	for i, line := range r.Lines {
		if validator.IsEmpty(line.StoreID) || validator.IsEmpty(line.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "lines",
				Message: fmt.Sprintf("line %d is missing store_id or employee_id", i),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConfirmRequest struct {
	Month       string   `json:"month"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *ConfirmRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be a YYYY-MM period",
		})
	}

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "at least one employee is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LineResponse struct {
	PeriodMonth       string          `json:"period_month"`
	StoreID           string          `json:"store_id"`
	EmployeeID        string          `json:"employee_id"`
	EmployeeName      string          `json:"employee_name"`
	PayType           string          `json:"pay_type"`
	WorkedMinutes     int             `json:"worked_minutes"`
	LateMinutes       int             `json:"late_minutes"`
	OvertimeMinutes   int             `json:"overtime_minutes"`
	HolidayDays       int             `json:"holiday_days"`
	BasePay           decimal.Decimal `json:"base_pay"`
	PositionAllowance decimal.Decimal `json:"position_allowance"`
	HazardAllowance   decimal.Decimal `json:"hazard_allowance"`
	BirthdayBonus     decimal.Decimal `json:"birthday_bonus"`
	SpecialBonus      decimal.Decimal `json:"special_bonus"`
	HolidayPay        decimal.Decimal `json:"holiday_pay"`
	OvertimePay       decimal.Decimal `json:"overtime_pay"`
	LateDeduction     decimal.Decimal `json:"late_deduction"`
	SocialSecurity    decimal.Decimal `json:"social_security"`
	Tax               decimal.Decimal `json:"tax"`
	OtherDeduction    decimal.Decimal `json:"other_deduction"`
	NetPay            decimal.Decimal `json:"net_pay"`
	Status            string          `json:"status"`
}
