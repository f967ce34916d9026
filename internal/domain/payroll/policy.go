package payroll

import "github.com/shopspring/decimal"

// SSOBand is one legislated step of the social-security contribution scale.
// ThroughYear 0 marks the final, unbounded band.
type SSOBand struct {
	FromYear    int
	ThroughYear int
	Ceiling     decimal.Decimal // contributable wage ceiling per month
	MaxMonthly  decimal.Decimal // deduction cap per month
}

// Policy carries every statutory constant the payroll engine applies, so a
// legislative change is a new policy version instead of a code edit.
type Policy struct {
	Version string

	// MonthlyDivisorHours converts a fixed monthly salary into its implied
	// hourly rate. 208 = 48-hour statutory work week times 52/12.
	MonthlyDivisorHours int64

	OvertimeRate decimal.Decimal // multiplier on the (implied) hourly rate

	SSORate decimal.Decimal // contribution rate on the capped wage base
	SSOBands []SSOBand

	// Holiday work pay. Monthly staff earn salary/HolidayDayDivisor per
	// holiday worked; hourly staff earn rate * HourlyHolidayHours *
	// HolidayRateMultiplier per holiday worked.
	HolidayDayDivisor     int64
	HourlyHolidayHours    int64
	HolidayRateMultiplier int64

	BirthdayBonus      decimal.Decimal
	BirthdayTenureDays int // minimum tenure, in days, for the bonus
}

// DefaultPolicy is the policy in force for Thai operations.
func DefaultPolicy() Policy {
	return Policy{
		Version:             "th-2025.1",
		MonthlyDivisorHours: 208,
		OvertimeRate:        decimal.NewFromFloat(1.5),
		SSORate:             decimal.NewFromFloat(0.05),
		SSOBands: []SSOBand{
			{FromYear: 0, ThroughYear: 2025, Ceiling: decimal.NewFromInt(15000), MaxMonthly: decimal.NewFromInt(750)},
			{FromYear: 2026, ThroughYear: 2028, Ceiling: decimal.NewFromInt(17500), MaxMonthly: decimal.NewFromInt(875)},
			{FromYear: 2029, ThroughYear: 2031, Ceiling: decimal.NewFromInt(20000), MaxMonthly: decimal.NewFromInt(1000)},
			{FromYear: 2032, ThroughYear: 0, Ceiling: decimal.NewFromInt(23000), MaxMonthly: decimal.NewFromInt(1150)},
		},
		HolidayDayDivisor:     30,
		HourlyHolidayHours:    8,
		HolidayRateMultiplier: 2,
		BirthdayBonus:         decimal.NewFromInt(1000),
		BirthdayTenureDays:    365,
	}
}

// BandForYear resolves the SSO band in force for a calendar year. A policy
// with no bands yields the zero band, under which nothing is deducted.
func (p Policy) BandForYear(year int) SSOBand {
	if len(p.SSOBands) == 0 {
		return SSOBand{}
	}
	for _, band := range p.SSOBands {
		if year >= band.FromYear && (band.ThroughYear == 0 || year <= band.ThroughYear) {
			return band
		}
	}
	// No configured band matched; the last one is the open-ended fallback.
	return p.SSOBands[len(p.SSOBands)-1]
}
