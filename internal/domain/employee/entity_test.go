package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActiveIn(t *testing.T) {
	monthStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	datePtr := func(y int, m time.Month, d int) *time.Time {
		t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &t
	}

	tests := []struct {
		name        string
		hire        time.Time
		resignation *time.Time
		want        bool
	}{
		{"hired long before", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), nil, true},
		{"hired mid-month", time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), nil, true},
		{"hired after month", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), nil, false},
		{"resigned mid-month", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), datePtr(2025, 3, 10), true},
		{"resigned before month", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), datePtr(2025, 2, 20), false},
		{"resigned on month start", time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), datePtr(2025, 3, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := Employee{HireDate: tt.hire, ResignationDate: tt.resignation}
			assert.Equal(t, tt.want, emp.ActiveIn(monthStart, monthEnd))
		})
	}
}
