package employee

import "context"

// EmployeeRepository is read-only from this core's perspective; employee CRUD
// lives in the HR module of the ERP.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// ListByStore returns employees of one store, or of every store when
	// storeID is nil. Resigned employees are included so a final payroll
	// month can still be computed for them.
	ListByStore(ctx context.Context, storeID *string) ([]Employee, error)
}
