package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2025-12-10", false},
		{"leap day", "2024-02-29", false},
		{"non leap day", "2025-02-29", true},
		{"out of range day", "2025-04-31", true},
		{"not zero padded", "2025-1-05", true},
		{"wrong order", "10-12-2025", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewDateStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDateString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DateString(tt.input), d)
		})
	}
}

func TestDateStringComparison(t *testing.T) {
	a := MustDate("2025-12-09")
	b := MustDate("2025-12-10")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(MustDate("2025-12-09")))
	assert.False(t, a.IsBefore(a))
}

func TestDateStringArithmetic(t *testing.T) {
	assert.Equal(t, MustDate("2026-01-01"), MustDate("2025-12-31").AddDays(1))
	assert.Equal(t, MustDate("2024-02-29"), MustDate("2024-03-01").AddDays(-1))
	assert.Equal(t, 3, MustDate("2025-12-10").DaysUntil(MustDate("2025-12-13")))
	assert.Equal(t, MonthString("2025-12"), MustDate("2025-12-10").Month())
	assert.Equal(t, 10, MustDate("2025-12-10").Day())
}

func TestNewDateStringUsesLocation(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	// 20:00 UTC 9 декабря - уже 10 декабря в Джакарте
	instant := time.Date(2025, 12, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, MustDate("2025-12-09"), NewDateString(instant))
	assert.Equal(t, MustDate("2025-12-10"), NewDateString(instant.In(jakarta)))
}

func TestDaysInMonthAndOffset(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2025, time.December))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2025, time.February))
	assert.Equal(t, 30, DaysInMonth(2025, time.November))

	// 1 декабря 2025 - понедельник
	assert.Equal(t, 1, WeekdayOffset(2025, time.December))
	// 1 февраля 2026 - воскресенье
	assert.Equal(t, 0, WeekdayOffset(2026, time.February))
}

func TestDateStringScan(t *testing.T) {
	var d DateString

	require.NoError(t, d.Scan(time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, MustDate("2025-12-10"), d)

	require.NoError(t, d.Scan("2025-12-11T00:00:00Z"))
	assert.Equal(t, MustDate("2025-12-11"), d)

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestMonthString(t *testing.T) {
	m, err := NewMonthStringFromString("2025-12")
	require.NoError(t, err)

	assert.Equal(t, MonthString("2026-01"), m.Next())
	assert.Equal(t, MonthString("2025-11"), m.Prev())
	assert.Equal(t, MustDate("2025-12-01"), m.FirstDay())
	assert.Equal(t, "December 2025", m.Title())
	assert.Equal(t, 2025, m.Year())
	assert.Equal(t, time.December, m.MonthOfYear())

	_, err = NewMonthStringFromString("2025-13")
	assert.ErrorIs(t, err, ErrInvalidMonthString)
}

func TestTimeString(t *testing.T) {
	ts, err := NewTimeStringFromString("19:30")
	require.NoError(t, err)

	later, err := ts.AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:15"), later)
	assert.True(t, ts.IsBefore(later))
	assert.True(t, later.IsAfter(ts))

	_, err = ts.AddMinutes(5 * 60)
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("7:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	var scanned TimeString
	require.NoError(t, scanned.Scan("07:15:00"))
	assert.Equal(t, TimeString("07:15"), scanned)
}
