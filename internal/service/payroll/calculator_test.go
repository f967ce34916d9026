package payroll

import (
	"testing"
	"time"

	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testEmployee(payType employee.PayType, amount int64) employee.Employee {
	return employee.Employee{
		ID:        uuid.NewString(),
		StoreID:   uuid.NewString(),
		FullName:  "Somchai Jaidee",
		PayType:   payType,
		PayAmount: decimal.NewFromInt(amount),
		HireDate:  time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC),
	}
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestComputeLineMonthlyWithLateness(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())
	emp := testEmployee(employee.PayTypeMonthly, 20000)

	line := calc.ComputeLine(emp, month(2025, time.March), payroll.MonthTotals{
		WorkedMinutes: 160 * 60,
		LateMinutes:   15,
		WorkedDays:    20,
	})

	// 15 min at 20000/208 per hour, truncated per line item.
	assert.Equal(t, "20000", line.BasePay.String())
	assert.Equal(t, "24", line.LateDeduction.String())
	assert.Equal(t, "750", line.SocialSecurity.String())
	assert.Equal(t, "19226", line.NetPay.String())
}

func TestComputeLineHourlyWithOvertime(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())
	emp := testEmployee(employee.PayTypeHourly, 50)

	line := calc.ComputeLine(emp, month(2025, time.March), payroll.MonthTotals{
		WorkedMinutes:   160 * 60,
		OvertimeMinutes: 600,
		WorkedDays:      20,
	})

	assert.Equal(t, "8000", line.BasePay.String())
	assert.Equal(t, "750", line.OvertimePay.String())
	assert.Equal(t, "400", line.SocialSecurity.String())
	assert.Equal(t, "8350", line.NetPay.String())
}

func TestComputeLineZeroAttendanceStillProducesLine(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())

	monthly := calc.ComputeLine(testEmployee(employee.PayTypeMonthly, 18000), month(2025, time.March), payroll.MonthTotals{})
	assert.Equal(t, "18000", monthly.BasePay.String())
	assert.Equal(t, 0, monthly.WorkedMinutes)

	hourly := calc.ComputeLine(testEmployee(employee.PayTypeHourly, 55), month(2025, time.March), payroll.MonthTotals{})
	assert.Equal(t, "0", hourly.BasePay.String())
	assert.Equal(t, "0", hourly.NetPay.String())
}

func TestComputeLineTruncatesEachItem(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())
	emp := testEmployee(employee.PayTypeMonthly, 20000)

	line := calc.ComputeLine(emp, month(2025, time.March), payroll.MonthTotals{
		WorkedMinutes:   160 * 60,
		OvertimeMinutes: 45,
	})

	// 20000/208 * 45/60 * 1.5 = 108.17..., truncated not rounded.
	assert.Equal(t, "108", line.OvertimePay.String())
	assert.True(t, line.OvertimePay.Equal(line.OvertimePay.Truncate(0)))
}

func TestSocialSecurityCapAndBands(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())

	tests := []struct {
		name     string
		year     int
		wageBase int64
		want     string
	}{
		{"below ceiling", 2025, 10000, "500"},
		{"at ceiling", 2025, 15000, "750"},
		{"above ceiling capped", 2025, 80000, "750"},
		{"second band", 2026, 80000, "875"},
		{"third band", 2029, 80000, "1000"},
		{"final band", 2032, 80000, "1150"},
		{"final band is open ended", 2040, 500000, "1150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.SocialSecurity(tt.year, decimal.NewFromInt(tt.wageBase))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestSocialSecurityNeverExceedsBandMax(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())

	// The deduction must plateau as salary grows without bound.
	for _, wage := range []int64{15000, 20000, 100000, 1000000, 10000000} {
		got := calc.SocialSecurity(2025, decimal.NewFromInt(wage))
		assert.Equal(t, "750", got.String(), "wage %d", wage)
	}
}

func TestSocialSecurityWithoutBandsDeductsNothing(t *testing.T) {
	calc := NewCalculator(payroll.Policy{SSORate: decimal.NewFromFloat(0.05)})

	got := calc.SocialSecurity(2025, decimal.NewFromInt(20000))
	assert.Equal(t, "0", got.String())
}

func TestHolidayPay(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())

	monthly := testEmployee(employee.PayTypeMonthly, 30000)
	line := calc.ComputeLine(monthly, month(2025, time.April), payroll.MonthTotals{
		WorkedMinutes: 100 * 60,
		HolidayDays:   2,
	})
	// salary/30 per holiday worked
	assert.Equal(t, "2000", line.HolidayPay.String())

	hourly := testEmployee(employee.PayTypeHourly, 60)
	line = calc.ComputeLine(hourly, month(2025, time.April), payroll.MonthTotals{
		WorkedMinutes: 100 * 60,
		HolidayDays:   1,
	})
	// rate * 8h * 2x per holiday worked
	assert.Equal(t, "960", line.HolidayPay.String())
}

func TestBirthdayBonus(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())

	birth := time.Date(1995, time.August, 12, 0, 0, 0, 0, time.UTC)

	t.Run("granted in birth month with enough tenure", func(t *testing.T) {
		emp := testEmployee(employee.PayTypeMonthly, 20000)
		emp.BirthDate = &birth
		emp.HireDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

		line := calc.ComputeLine(emp, month(2025, time.August), payroll.MonthTotals{})
		assert.Equal(t, "1000", line.BirthdayBonus.String())
	})

	t.Run("denied under one year of tenure", func(t *testing.T) {
		emp := testEmployee(employee.PayTypeMonthly, 20000)
		emp.BirthDate = &birth
		emp.HireDate = time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

		line := calc.ComputeLine(emp, month(2025, time.August), payroll.MonthTotals{})
		assert.Equal(t, "0", line.BirthdayBonus.String())
	})

	t.Run("denied outside birth month", func(t *testing.T) {
		emp := testEmployee(employee.PayTypeMonthly, 20000)
		emp.BirthDate = &birth
		emp.HireDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

		line := calc.ComputeLine(emp, month(2025, time.July), payroll.MonthTotals{})
		assert.Equal(t, "0", line.BirthdayBonus.String())
	})

	t.Run("denied without a birth date on file", func(t *testing.T) {
		emp := testEmployee(employee.PayTypeMonthly, 20000)
		line := calc.ComputeLine(emp, month(2025, time.August), payroll.MonthTotals{})
		assert.Equal(t, "0", line.BirthdayBonus.String())
	})
}

func TestNetPayMatchesComponentSum(t *testing.T) {
	calc := NewCalculator(payroll.DefaultPolicy())
	emp := testEmployee(employee.PayTypeMonthly, 25000)
	emp.PositionAllowance = decimal.NewFromInt(1500)

	line := calc.ComputeLine(emp, month(2025, time.May), payroll.MonthTotals{
		WorkedMinutes:   170 * 60,
		LateMinutes:     30,
		OvertimeMinutes: 120,
		WorkedDays:      21,
		HolidayDays:     1,
	})

	assert.True(t, line.NetPay.Equal(line.Net()), "net pay %s, recomputed %s", line.NetPay, line.Net())
}
