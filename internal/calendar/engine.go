package calendar

import (
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// DayState is the presentation state of a single calendar day
type DayState struct {
	Disabled bool // день нельзя выбрать: прошлое или занят
	Muted    bool // день за пределами доступного диапазона от выбранного заезда
	Selected bool // день входит в текущий выбор
}

// Engine answers availability questions over a RangeSource.
// All methods are pure; today is always passed in as a civil date.
type Engine struct {
	source RangeSource
}

// NewEngine creates an engine over the given source
func NewEngine(source RangeSource) *Engine {
	return &Engine{source: source}
}

// IsBooked reports whether the night starting on date is taken
func (e *Engine) IsBooked(date types.DateString) bool {
	for _, r := range e.source.Overlapping(date, date.AddDays(1)) {
		if r.Contains(date) {
			return true
		}
	}
	return false
}

// IsPast reports whether date is strictly before today
func (e *Engine) IsPast(date, today types.DateString) bool {
	return date.IsBefore(today)
}

// IsRangeFree reports whether no booked range overlaps the stay [checkIn, checkOut).
// Stays ending on a range's start or starting on its end are free.
func (e *Engine) IsRangeFree(checkIn, checkOut types.DateString) bool {
	for _, r := range e.source.Overlapping(checkIn, checkOut) {
		if r.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}

// IsSelectable reports whether a click on date can change the selection
func (e *Engine) IsSelectable(date, today types.DateString) bool {
	return !e.IsPast(date, today) && !e.IsBooked(date)
}

// ClassifyDay computes the presentation flags of a day for the current selection
func (e *Engine) ClassifyDay(date, today types.DateString, selection domain.Selection) DayState {
	return DayState{
		Disabled: !e.IsSelectable(date, today),
		Muted:    e.isMuted(date, selection),
		Selected: isSelected(date, selection),
	}
}

// isMuted: после выбора даты заезда приглушаются дни, до которых нельзя доехать без пересечения брони
func (e *Engine) isMuted(date types.DateString, selection domain.Selection) bool {
	if selection.State() != domain.SelectionCheckInOnly {
		return false
	}
	if !date.IsAfter(selection.CheckIn) {
		return false
	}
	return !e.IsRangeFree(selection.CheckIn, date)
}

func isSelected(date types.DateString, selection domain.Selection) bool {
	switch selection.State() {
	case domain.SelectionCheckInOnly:
		return date.Equal(selection.CheckIn)
	case domain.SelectionComplete:
		return !date.IsBefore(selection.CheckIn) && !date.IsAfter(selection.CheckOut)
	default:
		return false
	}
}
