package domain

import (
	"fmt"
	"time"
)

// CalendarDate is a calendar day with the month spelled out in English.
type CalendarDate struct {
	Year  int
	Month string
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month().String(), Day: t.Day()}
}

// String formats the date as "Month Day, Year", e.g. "October 5, 2026".
func (d CalendarDate) String() string {
	return fmt.Sprintf("%s %d, %d", d.Month, d.Day, d.Year)
}
