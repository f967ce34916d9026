package schedule

import "context"

// ShiftRepository reads published shift plans. One shift exists per
// (work_date, store, employee); the scheduling module owns creation and
// edits, but exposes Upsert here so its writes share this API surface.
type ShiftRepository interface {
	// GetByDate returns nil without error when no shift is planned; a
	// missing shift is a degraded path, not a failure.
	GetByDate(ctx context.Context, storeID, employeeID, workDate string) (*Shift, error)

	ListRange(ctx context.Context, from, to string, storeID, employeeID *string) ([]Shift, error)

	Upsert(ctx context.Context, shift Shift) (Shift, error)
}
