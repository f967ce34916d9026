package payroll

import "context"

type PayrollService interface {
	// Preview computes the payroll breakdown for a month without writing
	// anything. Head-office and aggregate stores are hidden from callers
	// without the head-office role.
	Preview(ctx context.Context, req PreviewRequest) ([]LineResponse, error)

	// Save upserts the given lines as records for the month, recomputing
	// each net pay from the submitted components.
	Save(ctx context.Context, req SaveRequest) ([]LineResponse, error)

	// Records lists persisted payroll for a month within the caller's scope.
	Records(ctx context.Context, month string, storeID *string) ([]LineResponse, error)

	// Confirm finalizes saved records.
	Confirm(ctx context.Context, req ConfirmRequest) error
}
