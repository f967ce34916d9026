package holiday

import "time"

// Holiday is one public holiday entry of the reference calendar.
type Holiday struct {
	ID        string
	Year      int
	Date      string // "YYYY-MM-DD"
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
