// Package calendar provides civil-date helpers and working-day arithmetic.
//
// Dates are represented as time.Time values at UTC midnight. Absent dates are nil pointers.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Layout is the wire and storage format of a civil date.
const Layout = "2006-01-02"

// Date returns the civil date y-m-d at UTC midnight.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize drops the clock and zone of t, keeping its calendar day.
func Normalize(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// Ptr returns a pointer to the normalized date.
func Ptr(t time.Time) *time.Time {
	n := Normalize(t)
	return &n
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// ParseOptional parses s, returning nil for an empty string.
func ParseOptional(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a date as YYYY-MM-DD, or "" when absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(Layout)
}

// IsWorkingDay reports whether t falls on Monday through Friday.
func IsWorkingDay(t time.Time) bool {
	w := t.Weekday()
	return w != time.Saturday && w != time.Sunday
}

// WorkingDaysBetween counts the weekdays in the inclusive range [start, endInclusive].
// It returns 0 when either date is absent or when endInclusive precedes start.
// Holidays are not considered.
func WorkingDaysBetween(start, endInclusive *time.Time) int {
	if start == nil || endInclusive == nil {
		return 0
	}
	from := Normalize(*start)
	to := Normalize(*endInclusive)
	if to.Before(from) {
		return 0
	}

	days := int(to.Sub(from).Hours()/24) + 1
	count := (days / 7) * 5

	// every run of 7 consecutive days holds exactly 5 weekdays; walk the remainder
	d := from.AddDate(0, 0, (days/7)*7)
	for !d.After(to) {
		if IsWorkingDay(d) {
			count++
		}
		d = d.AddDate(0, 0, 1)
	}
	return count
}

// Today returns the calendar day of now.
func Today(now time.Time) time.Time {
	return Normalize(now)
}
