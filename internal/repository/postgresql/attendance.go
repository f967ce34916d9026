package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/attendance"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepository{db: db}
}

const uniqueViolation = "23505"

const eventColumns = `
	a.id, a.store_id, a.employee_id, a.event_type, a.work_date, a.occurred_at,
	a.latitude, a.longitude, a.planned_time,
	a.late_minutes, a.early_leave_minutes, a.overtime_minutes, a.break_minutes,
	a.status, a.approval, a.approved_by, a.approved_at,
	a.created_at, a.updated_at
`

func scanEvent(row pgx.Row, e *attendance.Event) error {
	return row.Scan(
		&e.ID, &e.StoreID, &e.EmployeeID, &e.Type, &e.WorkDate, &e.OccurredAt,
		&e.Latitude, &e.Longitude, &e.PlannedTime,
		&e.LateMinutes, &e.EarlyLeaveMinutes, &e.OvertimeMinutes, &e.BreakMinutes,
		&e.Status, &e.Approval, &e.ApprovedBy, &e.ApprovedAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
}

// Create implements attendance.EventRepository. The unique index on
// (employee_id, store_id, event_type, work_date) is the authoritative
// once-per-day guard; a violation maps to ErrDuplicateEvent.
func (r *attendanceRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_events (
			store_id, employee_id, event_type, work_date, occurred_at,
			latitude, longitude, planned_time,
			late_minutes, early_leave_minutes, overtime_minutes, break_minutes,
			status, approval
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		event.StoreID,
		event.EmployeeID,
		event.Type,
		event.WorkDate,
		event.OccurredAt,
		event.Latitude,
		event.Longitude,
		event.PlannedTime,
		event.LateMinutes,
		event.EarlyLeaveMinutes,
		event.OvertimeMinutes,
		event.BreakMinutes,
		event.Status,
		event.Approval,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return attendance.Event{}, attendance.ErrDuplicateEvent
		}
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// GetByID implements attendance.EventRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `,
			e.full_name AS employee_name,
			s.name AS store_name
		FROM attendance_events a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN stores s ON s.id = a.store_id
		WHERE a.id = $1
	`

	var event attendance.Event
	err := q.QueryRow(ctx, query, id).Scan(
		&event.ID, &event.StoreID, &event.EmployeeID, &event.Type, &event.WorkDate, &event.OccurredAt,
		&event.Latitude, &event.Longitude, &event.PlannedTime,
		&event.LateMinutes, &event.EarlyLeaveMinutes, &event.OvertimeMinutes, &event.BreakMinutes,
		&event.Status, &event.Approval, &event.ApprovedBy, &event.ApprovedAt,
		&event.CreatedAt, &event.UpdatedAt,
		&event.EmployeeName, &event.StoreName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Event{}, attendance.ErrEventNotFound
		}
		return attendance.Event{}, fmt.Errorf("failed to get attendance event by ID: %w", err)
	}

	return event, nil
}

// GetForDay implements attendance.EventRepository.
func (r *attendanceRepository) GetForDay(ctx context.Context, storeID, employeeID string, eventType attendance.EventType, workDate string) (*attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + eventColumns + `
		FROM attendance_events a
		WHERE a.store_id = $1 AND a.employee_id = $2 AND a.event_type = $3 AND a.work_date = $4
		LIMIT 1
	`

	var event attendance.Event
	err := scanEvent(q.QueryRow(ctx, query, storeID, employeeID, eventType, workDate), &event)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no event of this type today
		}
		return nil, fmt.Errorf("failed to get attendance event for day: %w", err)
	}

	return &event, nil
}

// ListRange implements attendance.EventRepository.
func (r *attendanceRepository) ListRange(ctx context.Context, filter attendance.ListFilter) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.work_date >= $1 AND a.work_date <= $2"
	args := []interface{}{filter.From, filter.To}
	argIdx := 3

	if filter.StoreID != nil && *filter.StoreID != "" {
		baseWhere += fmt.Sprintf(" AND a.store_id = $%d", argIdx)
		args = append(args, *filter.StoreID)
		argIdx++
	}
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT ` + eventColumns + `,
			e.full_name AS employee_name,
			s.name AS store_name
		FROM attendance_events a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN stores s ON s.id = a.store_id
		WHERE ` + baseWhere + `
		ORDER BY a.work_date, a.occurred_at
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var event attendance.Event
		if err := rows.Scan(
			&event.ID, &event.StoreID, &event.EmployeeID, &event.Type, &event.WorkDate, &event.OccurredAt,
			&event.Latitude, &event.Longitude, &event.PlannedTime,
			&event.LateMinutes, &event.EarlyLeaveMinutes, &event.OvertimeMinutes, &event.BreakMinutes,
			&event.Status, &event.Approval, &event.ApprovedBy, &event.ApprovedAt,
			&event.CreatedAt, &event.UpdatedAt,
			&event.EmployeeName, &event.StoreName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, event)
	}

	return events, rows.Err()
}

// UpdateApproval implements attendance.EventRepository.
func (r *attendanceRepository) UpdateApproval(ctx context.Context, id string, approval attendance.Approval, approvedBy string, overtimeOverride *int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_events
		SET approval = $2,
			approved_by = $3,
			approved_at = NOW(),
			overtime_minutes = COALESCE($4, overtime_minutes),
			updated_at = NOW()
		WHERE id = $1 AND approval = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, approval, approvedBy, overtimeOverride)
	if err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the event does not exist or it was already settled.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return attendance.ErrAlreadyProcessed
	}

	return nil
}
