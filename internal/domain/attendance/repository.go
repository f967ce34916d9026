package attendance

import "context"

// EventRepository is the append-only attendance log. The once-per-day
// uniqueness of (employee, store, type, work_date) is enforced by the store
// itself, since the validator's read-then-write duplicate guard is racy
// under concurrent submissions.
type EventRepository interface {
	// Create inserts a validated event. Returns ErrDuplicateEvent when the
	// unique constraint on (employee_id, store_id, event_type, work_date)
	// rejects the row.
	Create(ctx context.Context, event Event) (Event, error)

	GetByID(ctx context.Context, id string) (Event, error)

	// GetForDay returns the event of one type on one day, or nil when absent.
	GetForDay(ctx context.Context, storeID, employeeID string, eventType EventType, workDate string) (*Event, error)

	// ListRange returns events ordered by (work_date, occurred_at) for a
	// date range, optionally narrowed to one store and/or one employee.
	ListRange(ctx context.Context, filter ListFilter) ([]Event, error)

	// UpdateApproval flips the approval state and optionally overrides the
	// recorded overtime minutes. The only permitted mutation of the log.
	UpdateApproval(ctx context.Context, id string, approval Approval, approvedBy string, overtimeOverride *int) error
}
