package payroll

import (
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// RecordStatus enum
type RecordStatus string

const (
	RecordStatusPending   RecordStatus = "pending"
	RecordStatusConfirmed RecordStatus = "confirmed"
)

// MonthTotals is the attendance aggregate one payroll line is derived from.
type MonthTotals struct {
	WorkedMinutes   int
	LateMinutes     int
	OvertimeMinutes int // approved overtime only
	WorkedDays      int // completed days (clock-in and clock-out both present)
	HolidayDays     int // completed days that fall on a public holiday
}

// Line is one employee's payroll breakdown for one month. Every monetary
// value is truncated to whole currency units at the line item it was
// computed on.
type Line struct {
	PeriodMonth  string // "YYYY-MM"
	StoreID      string
	EmployeeID   string
	EmployeeName string
	PayType      employee.PayType

	WorkedMinutes   int
	LateMinutes     int
	OvertimeMinutes int
	HolidayDays     int

	BasePay           decimal.Decimal
	PositionAllowance decimal.Decimal
	HazardAllowance   decimal.Decimal // manual override, zero in previews
	BirthdayBonus     decimal.Decimal
	SpecialBonus      decimal.Decimal // manual override, zero in previews
	HolidayPay        decimal.Decimal
	OvertimePay       decimal.Decimal
	LateDeduction     decimal.Decimal
	SocialSecurity    decimal.Decimal
	Tax               decimal.Decimal // manual override, zero in previews
	OtherDeduction    decimal.Decimal // manual override, zero in previews
	NetPay            decimal.Decimal

	Status RecordStatus
}

// Net recomputes the net pay from the line's components. Manual overrides
// (hazard, special bonus, tax, other deduction) participate, so the net is
// re-derived after edits rather than patched.
func (l Line) Net() decimal.Decimal {
	return l.BasePay.
		Add(l.PositionAllowance).
		Add(l.HazardAllowance).
		Add(l.BirthdayBonus).
		Add(l.SpecialBonus).
		Add(l.HolidayPay).
		Add(l.OvertimePay).
		Sub(l.LateDeduction).
		Sub(l.SocialSecurity).
		Sub(l.Tax).
		Sub(l.OtherDeduction)
}

// Record is a persisted Line, upsertable by (period_month, store, employee).
type Record struct {
	ID string
	Line
	CreatedAt time.Time
	UpdatedAt time.Time
}
