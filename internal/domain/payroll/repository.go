package payroll

import "context"

// PayrollRepository persists computed payroll statements.
type PayrollRepository interface {
	// Upsert writes a record keyed by (period_month, store_id, employee_id),
	// replacing the whole prior row for that key. Concurrent saves for the
	// same key converge to last write wins.
	Upsert(ctx context.Context, record Record) (Record, error)

	GetByKey(ctx context.Context, month, storeID, employeeID string) (Record, error)

	ListByMonth(ctx context.Context, month string, storeID *string) ([]Record, error)

	// Confirm moves records of a month to the confirmed terminal state.
	Confirm(ctx context.Context, month string, employeeIDs []string) error
}
