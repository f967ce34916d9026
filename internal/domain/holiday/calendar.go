package holiday

import "fmt"

// fixedCalendar lists the fixed-date Thai public holidays used when no
// calendar has been configured for a year. Substitution days and the lunar
// holidays move every year and must be maintained through the holiday CRUD.
var fixedCalendar = []struct {
	month, day int
	name       string
}{
	{1, 1, "New Year's Day"},
	{4, 6, "Chakri Memorial Day"},
	{4, 13, "Songkran Festival"},
	{4, 14, "Songkran Festival"},
	{4, 15, "Songkran Festival"},
	{5, 1, "National Labour Day"},
	{5, 4, "Coronation Day"},
	{7, 28, "King's Birthday"},
	{8, 12, "The Queen Mother's Birthday"},
	{10, 13, "King Bhumibol Memorial Day"},
	{10, 23, "King Chulalongkorn Day"},
	{12, 5, "King Bhumibol's Birthday"},
	{12, 10, "Constitution Day"},
	{12, 31, "New Year's Eve"},
}

// BuiltinCalendar returns the fallback holiday set for a year.
func BuiltinCalendar(year int) []Holiday {
	holidays := make([]Holiday, 0, len(fixedCalendar))
	for _, h := range fixedCalendar {
		holidays = append(holidays, Holiday{
			Year: year,
			Date: fmt.Sprintf("%04d-%02d-%02d", year, h.month, h.day),
			Name: h.name,
		})
	}
	return holidays
}
