package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthDayLayout is the year-agnostic form schedule data is compared on.
const MonthDayLayout = "01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatMonthDay formats a time as MM-DD in its current location.
func FormatMonthDay(t time.Time) string {
	return t.Format(MonthDayLayout)
}
