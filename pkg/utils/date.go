package utils

import "time"

func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

func QuarterStart(t time.Time) time.Time {
	quarterMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
}

func YearStart(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func DaysInMonth(t time.Time) int {
	return MonthEnd(t).Day()
}

// MonthStartsBetween returns the first day of every month from start through
// end, inclusive on both sides.
func MonthStartsBetween(start, end time.Time) []time.Time {
	var months []time.Time

	for cursor := MonthStart(start); !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		months = append(months, cursor)
	}

	return months
}
