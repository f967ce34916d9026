package holiday

import "context"

type HolidayRepository interface {
	// ListByYear returns the configured calendar for a year; an empty result
	// means the caller should fall back to BuiltinCalendar.
	ListByYear(ctx context.Context, year int) ([]Holiday, error)

	Upsert(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
