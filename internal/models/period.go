package models

import (
	"fmt"
	"time"
)

// MinYear is the earliest year accepted for period parameters.
const MinYear = 2000

// Period identifies one calendar month for aggregation and budget scoping.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PeriodOf returns the period containing the given instant.
func PeriodOf(t time.Time) Period {
	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Validate checks the month and year ranges.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
	}
	if p.Year < MinYear {
		return fmt.Errorf("year must be %d or later, got %d", MinYear, p.Year)
	}
	return nil
}

// Start returns the first instant of the period.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following period. The period spans
// [Start, End), which keeps every transaction in exactly one period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

// Contains reports whether the instant falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return int(t.Month()) == p.Month && t.Year() == p.Year
}

// Key returns the canonical "YYYY-MM" label used by trend maps.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// DaysInMonth returns the number of days in the given month, accounting for
// leap years.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
