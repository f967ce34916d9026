package schedule

import (
	"testing"

	"github.com/choongman-erp/erp-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUpsertRequest() UpsertShiftRequest {
	return UpsertShiftRequest{
		StoreID:    "store-1",
		EmployeeID: "emp-1",
		WorkDate:   "2025-03-10",
		ClockIn:    "09:00",
		ClockOut:   "18:00",
	}
}

func TestUpsertShiftRequestValidate(t *testing.T) {
	req := validUpsertRequest()
	assert.NoError(t, req.Validate())

	withBreak := validUpsertRequest()
	withBreak.BreakStart = strPtr("12:00")
	withBreak.BreakEnd = strPtr("13:00")
	assert.NoError(t, withBreak.Validate())
}

func TestUpsertShiftRequestRejectsOvernightShift(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  string
		clockOut string
	}{
		{"clock-out equals clock-in", "09:00", "09:00"},
		{"clock-out before clock-in", "22:00", "06:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUpsertRequest()
			req.ClockIn = tt.clockIn
			req.ClockOut = tt.clockOut

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), "clock_out")
		})
	}
}

func TestUpsertShiftRequestRejectsInvertedBreakWindow(t *testing.T) {
	req := validUpsertRequest()
	req.BreakStart = strPtr("13:00")
	req.BreakEnd = strPtr("12:00")

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "break_end")
}
