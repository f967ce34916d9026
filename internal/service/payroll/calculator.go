package payroll

import (
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var (
	sixty = decimal.NewFromInt(60)
)

// Calculator derives one payroll line from an employee's master data and a
// month of attendance totals. It is pure: every statutory constant comes
// from the policy, every fractional currency amount is truncated at the
// line item it was computed on.
type Calculator struct {
	Policy payroll.Policy
}

func NewCalculator(policy payroll.Policy) Calculator {
	return Calculator{Policy: policy}
}

// ComputeLine builds the full breakdown for one employee. monthStart must be
// the first day of the target month. An employee with zero attendance still
// gets a line: absence handling belongs to the leave policy upstream, not to
// this engine.
func (c Calculator) ComputeLine(emp employee.Employee, monthStart time.Time, totals payroll.MonthTotals) payroll.Line {
	line := payroll.Line{
		PeriodMonth:       monthStart.Format("2006-01"),
		StoreID:           emp.StoreID,
		EmployeeID:        emp.ID,
		EmployeeName:      emp.FullName,
		PayType:           emp.PayType,
		WorkedMinutes:     totals.WorkedMinutes,
		LateMinutes:       totals.LateMinutes,
		OvertimeMinutes:   totals.OvertimeMinutes,
		HolidayDays:       totals.HolidayDays,
		PositionAllowance: emp.PositionAllowance.Truncate(0),
		HazardAllowance:   decimal.Zero,
		SpecialBonus:      decimal.Zero,
		Tax:               decimal.Zero,
		OtherDeduction:    decimal.Zero,
		Status:            payroll.RecordStatusPending,
	}

	// Pay basis split: the hourly-equivalent rate is the hourly rate itself
	// for hourly staff, or salary over the statutory monthly divisor for
	// monthly staff.
	var hourlyRate decimal.Decimal
	switch emp.PayType {
	case employee.PayTypeHourly:
		hourlyRate = emp.PayAmount
		line.BasePay = hourlyRate.
			Mul(decimal.NewFromInt(int64(totals.WorkedMinutes))).
			Div(sixty).
			Truncate(0)
	default:
		hourlyRate = emp.PayAmount.Div(decimal.NewFromInt(c.Policy.MonthlyDivisorHours))
		line.BasePay = emp.PayAmount.Truncate(0)
	}

	line.LateDeduction = hourlyRate.
		Mul(decimal.NewFromInt(int64(totals.LateMinutes))).
		Div(sixty).
		Truncate(0)

	line.OvertimePay = hourlyRate.
		Mul(decimal.NewFromInt(int64(totals.OvertimeMinutes))).
		Div(sixty).
		Mul(c.Policy.OvertimeRate).
		Truncate(0)

	line.SocialSecurity = c.SocialSecurity(monthStart.Year(), line.BasePay)
	line.HolidayPay = c.holidayPay(emp, hourlyRate, totals.HolidayDays)
	line.BirthdayBonus = c.birthdayBonus(emp, monthStart)

	line.NetPay = line.Net()
	return line
}

// SocialSecurity computes the monthly contribution: the configured rate on
// the wage base capped at the year band's ceiling, further capped at the
// band's maximum deduction. The deduction never exceeds the band maximum
// regardless of salary.
func (c Calculator) SocialSecurity(year int, wageBase decimal.Decimal) decimal.Decimal {
	band := c.Policy.BandForYear(year)

	contribution := decimal.Min(wageBase, band.Ceiling).Mul(c.Policy.SSORate)
	if contribution.GreaterThan(band.MaxMonthly) {
		contribution = band.MaxMonthly
	}
	return contribution.Truncate(0)
}

// holidayPay: monthly staff earn one thirtieth of salary per holiday worked;
// hourly staff earn a double day-rate of HourlyHolidayHours hours.
func (c Calculator) holidayPay(emp employee.Employee, hourlyRate decimal.Decimal, holidayDays int) decimal.Decimal {
	if holidayDays == 0 {
		return decimal.Zero
	}

	days := decimal.NewFromInt(int64(holidayDays))
	if emp.PayType == employee.PayTypeHourly {
		return hourlyRate.
			Mul(decimal.NewFromInt(c.Policy.HourlyHolidayHours)).
			Mul(decimal.NewFromInt(c.Policy.HolidayRateMultiplier)).
			Mul(days).
			Truncate(0)
	}
	return emp.PayAmount.
		Div(decimal.NewFromInt(c.Policy.HolidayDayDivisor)).
		Mul(days).
		Truncate(0)
}

// birthdayBonus applies when the birth month matches the target month and
// tenure at the start of the month has reached the policy threshold.
func (c Calculator) birthdayBonus(emp employee.Employee, monthStart time.Time) decimal.Decimal {
	if emp.BirthDate == nil || emp.BirthDate.Month() != monthStart.Month() {
		return decimal.Zero
	}

	tenureDays := int(monthStart.Sub(emp.HireDate).Hours() / 24)
	if tenureDays < c.Policy.BirthdayTenureDays {
		return decimal.Zero
	}
	return c.Policy.BirthdayBonus.Truncate(0)
}
