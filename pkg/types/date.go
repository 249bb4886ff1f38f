package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the fixed-width civil date format (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// ErrInvalidDateString is returned when a string is not a valid YYYY-MM-DD date
var ErrInvalidDateString = errors.New("invalid date string format")

// DateString is a civil date in YYYY-MM-DD form.
// Because the format is fixed-width and zero-padded, lexicographic order is chronological order.
// The zero value (empty string) means "no date".
type DateString string

// NewDateString returns the civil date of t in t's location
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateLayout))
}

// NewDateStringFromString parses a strict YYYY-MM-DD string
func NewDateStringFromString(s string) (DateString, error) {
	if len(s) != len(DateLayout) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	// time.Parse нормализует только валидные даты, повторное форматирование отсекает "2025-02-30"
	if t.Format(DateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(s), nil
}

// MustDate parses s and panics on error. Intended for static data and tests.
func MustDate(s string) DateString {
	d, err := NewDateStringFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero reports whether the date is unset
func (d DateString) IsZero() bool {
	return d == ""
}

// IsBefore reports whether d is strictly earlier than other
func (d DateString) IsBefore(other DateString) bool {
	return d < other
}

// IsAfter reports whether d is strictly later than other
func (d DateString) IsAfter(other DateString) bool {
	return d > other
}

// Equal reports whether both dates are the same civil date
func (d DateString) Equal(other DateString) bool {
	return d == other
}

// Time returns midnight UTC of the date. The zero DateString yields the zero time.
func (d DateString) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return t
}

// AddDays shifts the date by n calendar days
func (d DateString) AddDays(n int) DateString {
	return NewDateString(d.Time().AddDate(0, 0, n))
}

// DaysUntil returns the number of calendar days from d to other (other - d)
func (d DateString) DaysUntil(other DateString) int {
	return int(other.Time().Sub(d.Time()).Hours() / 24)
}

// Month returns the month key the date belongs to
func (d DateString) Month() MonthString {
	return MonthString(string(d)[:7])
}

// Day returns the day of month
func (d DateString) Day() int {
	return d.Time().Day()
}

// String implements fmt.Stringer
func (d DateString) String() string {
	return string(d)
}

// Value implements driver.Valuer so the date is stored as a SQL DATE
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

// Scan implements sql.Scanner for DATE columns (lib/pq returns time.Time)
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
	case time.Time:
		*d = NewDateString(v)
	case string:
		parsed, err := NewDateStringFromString(v[:min(len(v), len(DateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidDateString, src)
	}
	return nil
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// День 0 следующего месяца - последний день текущего
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekdayOffset returns how many blank cells precede day 1 in a Sunday-first grid
func WeekdayOffset(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}
