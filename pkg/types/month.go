package types

import (
	"errors"
	"fmt"
	"time"
)

// MonthLayout is the month key format (YYYY-MM)
const MonthLayout = "2006-01"

// ErrInvalidMonthString is returned when a string is not a valid YYYY-MM month
var ErrInvalidMonthString = errors.New("invalid month string format")

// MonthString is a calendar month key in YYYY-MM form
type MonthString string

// NewMonthString returns the month key of t
func NewMonthString(t time.Time) MonthString {
	return MonthString(t.Format(MonthLayout))
}

// NewMonthStringFromString parses a strict YYYY-MM string
func NewMonthStringFromString(s string) (MonthString, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil || t.Format(MonthLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidMonthString, s)
	}
	return MonthString(s), nil
}

// FirstDay returns the first civil date of the month
func (m MonthString) FirstDay() DateString {
	return DateString(string(m) + "-01")
}

// Year returns the year component
func (m MonthString) Year() int {
	return m.FirstDay().Time().Year()
}

// MonthOfYear returns the month component
func (m MonthString) MonthOfYear() time.Month {
	return m.FirstDay().Time().Month()
}

// Next returns the following month
func (m MonthString) Next() MonthString {
	return NewMonthString(m.FirstDay().Time().AddDate(0, 1, 0))
}

// Prev returns the preceding month
func (m MonthString) Prev() MonthString {
	return NewMonthString(m.FirstDay().Time().AddDate(0, -1, 0))
}

// Title returns a human readable title, e.g. "December 2025"
func (m MonthString) Title() string {
	return m.FirstDay().Time().Format("January 2006")
}

// String implements fmt.Stringer
func (m MonthString) String() string {
	return string(m)
}
