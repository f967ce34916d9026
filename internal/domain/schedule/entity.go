package schedule

import "time"

// Shift is the planned working day for one employee at one store. Times of
// day are "HH:MM" strings in the site's local time; BreakStart/BreakEnd are
// nil when the shift has no planned break window.
type Shift struct {
	ID         string
	StoreID    string
	EmployeeID string
	WorkDate   string // "YYYY-MM-DD", site-local calendar day
	ClockIn    string
	ClockOut   string
	BreakStart *string
	BreakEnd   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PlannedMinutes returns the planned working minutes of the shift: clock-out
// minus clock-in minus the planned break window. Malformed times count as 0.
func (s Shift) PlannedMinutes() int {
	in, errIn := parseClockMinutes(s.ClockIn)
	out, errOut := parseClockMinutes(s.ClockOut)
	if errIn != nil || errOut != nil || out <= in {
		return 0
	}
	return out - in - s.PlannedBreakMinutes()
}

// PlannedBreakMinutes returns the length of the planned break window, or 0
// when the shift has none.
func (s Shift) PlannedBreakMinutes() int {
	if s.BreakStart == nil || s.BreakEnd == nil {
		return 0
	}
	start, errStart := parseClockMinutes(*s.BreakStart)
	end, errEnd := parseClockMinutes(*s.BreakEnd)
	if errStart != nil || errEnd != nil || end <= start {
		return 0
	}
	return end - start
}

func parseClockMinutes(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
