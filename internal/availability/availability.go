// Package availability derives a car's is_available flag from a subscription window.
package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used on the wire and in the document store.
const DateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("invalid date format")

// Day truncates t to its calendar date at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}
	return t, nil
}

// ForPeriod reports whether a car is free on ref given the inclusive window [start, end].
// A car covered by the window is reserved, so the result is the negation of activity.
func ForPeriod(start, end, ref time.Time) bool {
	day := Day(ref)
	active := !day.Before(Day(start)) && !day.After(Day(end))
	return !active
}

// Compute parses both bounds and applies ForPeriod.
func Compute(start, end string, ref time.Time) (bool, error) {
	from, err := ParseDate(start)
	if err != nil {
		return false, err
	}
	to, err := ParseDate(end)
	if err != nil {
		return false, err
	}
	return ForPeriod(from, to, ref), nil
}
