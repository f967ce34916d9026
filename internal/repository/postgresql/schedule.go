package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/schedule"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

// GetByDate implements schedule.ShiftRepository.
func (r *shiftRepository) GetByDate(ctx context.Context, storeID, employeeID, workDate string) (*schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, employee_id, work_date, clock_in, clock_out,
			   break_start, break_end, created_at, updated_at
		FROM scheduled_shifts
		WHERE store_id = $1 AND employee_id = $2 AND work_date = $3
	`

	var s schedule.Shift
	err := q.QueryRow(ctx, query, storeID, employeeID, workDate).Scan(
		&s.ID, &s.StoreID, &s.EmployeeID, &s.WorkDate, &s.ClockIn, &s.ClockOut,
		&s.BreakStart, &s.BreakEnd, &s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // unscheduled day, degraded path
		}
		return nil, fmt.Errorf("failed to get shift by date: %w", err)
	}

	return &s, nil
}

// ListRange implements schedule.ShiftRepository.
func (r *shiftRepository) ListRange(ctx context.Context, from, to string, storeID, employeeID *string) ([]schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "work_date >= $1 AND work_date <= $2"
	args := []interface{}{from, to}
	argIdx := 3

	if storeID != nil && *storeID != "" {
		baseWhere += fmt.Sprintf(" AND store_id = $%d", argIdx)
		args = append(args, *storeID)
		argIdx++
	}
	if employeeID != nil && *employeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *employeeID)
		argIdx++
	}

	query := `
		SELECT id, store_id, employee_id, work_date, clock_in, clock_out,
			   break_start, break_end, created_at, updated_at
		FROM scheduled_shifts
		WHERE ` + baseWhere + `
		ORDER BY work_date, store_id, employee_id
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []schedule.Shift
	for rows.Next() {
		var s schedule.Shift
		if err := rows.Scan(
			&s.ID, &s.StoreID, &s.EmployeeID, &s.WorkDate, &s.ClockIn, &s.ClockOut,
			&s.BreakStart, &s.BreakEnd, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// Upsert implements schedule.ShiftRepository.
func (r *shiftRepository) Upsert(ctx context.Context, shift schedule.Shift) (schedule.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO scheduled_shifts (
			store_id, employee_id, work_date, clock_in, clock_out, break_start, break_end
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (store_id, employee_id, work_date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shift.StoreID,
		shift.EmployeeID,
		shift.WorkDate,
		shift.ClockIn,
		shift.ClockOut,
		shift.BreakStart,
		shift.BreakEnd,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return schedule.Shift{}, fmt.Errorf("failed to upsert shift: %w", err)
	}

	return shift, nil
}
