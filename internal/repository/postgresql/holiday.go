package postgresql

import (
	"context"
	"fmt"

	"github.com/choongman-erp/erp-backend-go/internal/domain/holiday"
	"github.com/choongman-erp/erp-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// ListByYear implements holiday.HolidayRepository.
func (r *holidayRepository) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, year, holiday_date, name, created_at, updated_at
		FROM public_holidays
		WHERE year = $1
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Year, &h.Date, &h.Name, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

// Upsert implements holiday.HolidayRepository.
func (r *holidayRepository) Upsert(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO public_holidays (year, holiday_date, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (holiday_date) DO UPDATE SET
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, h.Year, h.Date, h.Name).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to upsert holiday: %w", err)
	}

	return h, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM public_holidays WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}

	return nil
}
