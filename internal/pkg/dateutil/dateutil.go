// Package dateutil holds the calendar arithmetic shared by the holiday,
// work-day and statistics services. All dates are normalized to midnight UTC
// so they can be used as map keys and compared with ==.
package dateutil

import "time"

const Layout = "2006-01-02"

// Date returns the given calendar day at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day and location from t.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Parse parses a YYYY-MM-DD string into a normalized date.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// Format renders a date as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last day of a month, inclusive.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	return Date(year, month, 1), Date(year, month, DaysInMonth(year, month))
}

// QuarterRange returns the first and last day of a quarter, inclusive.
// The quarter must already be validated to be in [1, 4].
func QuarterRange(year, quarter int) (time.Time, time.Time) {
	startMonth := time.Month((quarter-1)*3 + 1)
	endMonth := startMonth + 2
	return Date(year, startMonth, 1), Date(year, endMonth, DaysInMonth(year, endMonth))
}

// QuarterOf returns the quarter (1-4) the given date falls in.
func QuarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// NextDay returns the day after t.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
