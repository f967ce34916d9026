package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
)
