package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                string
	StoreID           string
	FullName          string
	PayType           PayType
	PayAmount         decimal.Decimal // monthly salary or hourly rate, per PayType
	PositionAllowance decimal.Decimal
	BirthDate         *time.Time
	HireDate          time.Time
	ResignationDate   *time.Time
	AnnualLeaveDays   int
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	StoreName *string
}

type PayType string

const (
	PayTypeMonthly PayType = "monthly"
	PayTypeHourly  PayType = "hourly"
)

var PayTypeValues = []string{
	string(PayTypeMonthly),
	string(PayTypeHourly),
}

// ActiveIn reports whether the employee is employed during any part of the
// given month (hired before the month ends, not resigned before it starts).
func (e Employee) ActiveIn(monthStart, monthEnd time.Time) bool {
	if !e.HireDate.Before(monthEnd) {
		return false
	}
	if e.ResignationDate != nil && e.ResignationDate.Before(monthStart) {
		return false
	}
	return true
}
