package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/employee"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.store_id, e.full_name, e.pay_type, e.pay_amount, e.position_allowance,
	e.birth_date, e.hire_date, e.resignation_date, e.annual_leave_days,
	e.created_at, e.updated_at,
	s.name AS store_name
`

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN stores s ON s.id = e.store_id
		WHERE e.id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.StoreID, &emp.FullName, &emp.PayType, &emp.PayAmount, &emp.PositionAllowance,
		&emp.BirthDate, &emp.HireDate, &emp.ResignationDate, &emp.AnnualLeaveDays,
		&emp.CreatedAt, &emp.UpdatedAt,
		&emp.StoreName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// ListByStore implements employee.EmployeeRepository.
func (r *employeeRepository) ListByStore(ctx context.Context, storeID *string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN stores s ON s.id = e.store_id
	`
	args := []interface{}{}
	if storeID != nil {
		query += " WHERE e.store_id = $1"
		args = append(args, *storeID)
	}
	query += " ORDER BY s.name, e.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(
			&emp.ID, &emp.StoreID, &emp.FullName, &emp.PayType, &emp.PayAmount, &emp.PositionAllowance,
			&emp.BirthDate, &emp.HireDate, &emp.ResignationDate, &emp.AnnualLeaveDays,
			&emp.CreatedAt, &emp.UpdatedAt,
			&emp.StoreName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
