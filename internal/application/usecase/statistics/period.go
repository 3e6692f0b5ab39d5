// Package statistics contains the aggregate statistics engine.
package statistics

import "time"

// StartOfDay returns midnight of the day containing date, in its location.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// WeekStart returns the Monday 00:00:00 of the ISO week containing date.
func WeekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	daysFromMonday := weekday - 1
	return time.Date(date.Year(), date.Month(), date.Day()-daysFromMonday, 0, 0, 0, 0, date.Location())
}

// MonthStart returns the first instant of the calendar month containing date.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// SameCalendarDay reports whether a and b fall on the same calendar day in
// b's location.
func SameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
