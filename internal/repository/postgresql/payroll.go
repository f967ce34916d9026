package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/payroll"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, period_month, store_id, employee_id, employee_name, pay_type,
	worked_minutes, late_minutes, overtime_minutes, holiday_days,
	base_pay, position_allowance, hazard_allowance, birthday_bonus, special_bonus,
	holiday_pay, overtime_pay, late_deduction, social_security, tax, other_deduction,
	net_pay, status, created_at, updated_at
`

func scanPayrollRecord(row pgx.Row, rec *payroll.Record) error {
	return row.Scan(
		&rec.ID, &rec.PeriodMonth, &rec.StoreID, &rec.EmployeeID, &rec.EmployeeName, &rec.PayType,
		&rec.WorkedMinutes, &rec.LateMinutes, &rec.OvertimeMinutes, &rec.HolidayDays,
		&rec.BasePay, &rec.PositionAllowance, &rec.HazardAllowance, &rec.BirthdayBonus, &rec.SpecialBonus,
		&rec.HolidayPay, &rec.OvertimePay, &rec.LateDeduction, &rec.SocialSecurity, &rec.Tax, &rec.OtherDeduction,
		&rec.NetPay, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
}

// Upsert implements payroll.PayrollRepository. The whole row is replaced on
// conflict: payroll is always recomputed from source data, never merged.
func (r *payrollRepository) Upsert(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			period_month, store_id, employee_id, employee_name, pay_type,
			worked_minutes, late_minutes, overtime_minutes, holiday_days,
			base_pay, position_allowance, hazard_allowance, birthday_bonus, special_bonus,
			holiday_pay, overtime_pay, late_deduction, social_security, tax, other_deduction,
			net_pay, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22
		)
		ON CONFLICT (period_month, store_id, employee_id) DO UPDATE SET
			employee_name = EXCLUDED.employee_name,
			pay_type = EXCLUDED.pay_type,
			worked_minutes = EXCLUDED.worked_minutes,
			late_minutes = EXCLUDED.late_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			holiday_days = EXCLUDED.holiday_days,
			base_pay = EXCLUDED.base_pay,
			position_allowance = EXCLUDED.position_allowance,
			hazard_allowance = EXCLUDED.hazard_allowance,
			birthday_bonus = EXCLUDED.birthday_bonus,
			special_bonus = EXCLUDED.special_bonus,
			holiday_pay = EXCLUDED.holiday_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			late_deduction = EXCLUDED.late_deduction,
			social_security = EXCLUDED.social_security,
			tax = EXCLUDED.tax,
			other_deduction = EXCLUDED.other_deduction,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			updated_at = NOW()
		WHERE payroll_records.status <> 'confirmed'
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.PeriodMonth,
		record.StoreID,
		record.EmployeeID,
		record.EmployeeName,
		record.PayType,
		record.WorkedMinutes,
		record.LateMinutes,
		record.OvertimeMinutes,
		record.HolidayDays,
		record.BasePay,
		record.PositionAllowance,
		record.HazardAllowance,
		record.BirthdayBonus,
		record.SpecialBonus,
		record.HolidayPay,
		record.OvertimePay,
		record.LateDeduction,
		record.SocialSecurity,
		record.Tax,
		record.OtherDeduction,
		record.NetPay,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The conflict target exists but the WHERE clause filtered it:
			// the record is confirmed and immutable.
			return payroll.Record{}, payroll.ErrRecordConfirmed
		}
		return payroll.Record{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return record, nil
}

// GetByKey implements payroll.PayrollRepository.
func (r *payrollRepository) GetByKey(ctx context.Context, month, storeID, employeeID string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE period_month = $1 AND store_id = $2 AND employee_id = $3
	`

	var rec payroll.Record
	err := scanPayrollRecord(q.QueryRow(ctx, query, month, storeID, employeeID), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll record: %w", err)
	}

	return rec, nil
}

// ListByMonth implements payroll.PayrollRepository.
func (r *payrollRepository) ListByMonth(ctx context.Context, month string, storeID *string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payroll_records
		WHERE period_month = $1
	`
	args := []interface{}{month}
	if storeID != nil && *storeID != "" {
		query += " AND store_id = $2"
		args = append(args, *storeID)
	}
	query += " ORDER BY store_id, employee_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		if err := rows.Scan(
			&rec.ID, &rec.PeriodMonth, &rec.StoreID, &rec.EmployeeID, &rec.EmployeeName, &rec.PayType,
			&rec.WorkedMinutes, &rec.LateMinutes, &rec.OvertimeMinutes, &rec.HolidayDays,
			&rec.BasePay, &rec.PositionAllowance, &rec.HazardAllowance, &rec.BirthdayBonus, &rec.SpecialBonus,
			&rec.HolidayPay, &rec.OvertimePay, &rec.LateDeduction, &rec.SocialSecurity, &rec.Tax, &rec.OtherDeduction,
			&rec.NetPay, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Confirm implements payroll.PayrollRepository.
func (r *payrollRepository) Confirm(ctx context.Context, month string, employeeIDs []string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET status = 'confirmed', updated_at = NOW()
		WHERE period_month = $1 AND employee_id = ANY($2)
	`

	tag, err := q.Exec(ctx, query, month, employeeIDs)
	if err != nil {
		return fmt.Errorf("failed to confirm payroll records: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}
