package payroll

import "errors"

var (
	ErrInvalidPeriod   = errors.New("invalid payroll period")
	ErrRecordNotFound  = errors.New("payroll record not found")
	ErrRecordConfirmed = errors.New("payroll record is confirmed and can no longer be modified")
)
