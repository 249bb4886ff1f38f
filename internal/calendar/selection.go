package calendar

import (
	"fmt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Outcome describes what a click did to the selection
type Outcome string

const (
	OutcomeIgnored      Outcome = "ignored"
	OutcomeCheckInSet   Outcome = "check_in_set"
	OutcomeCheckInMoved Outcome = "check_in_moved"
	OutcomeCompleted    Outcome = "completed"
	OutcomeRejected     Outcome = "rejected"
)

// Machine is the check-in/check-out selection state machine
type Machine struct {
	engine *Engine
}

// NewMachine creates a selection machine backed by the engine
func NewMachine(engine *Engine) *Machine {
	return &Machine{engine: engine}
}

// Click applies a click on date to the selection and returns the next selection.
//
// Rules are checked in order:
//  1. booked or past dates are ignored;
//  2. an empty or complete selection restarts with date as check-in;
//  3. a date before the check-in moves the check-in;
//  4. a later date completes the stay when the range is free, otherwise the click is rejected.
//
// On rejection the input selection is returned unchanged together with
// ErrRangeNotAvailable or ErrZeroNightStay.
func (m *Machine) Click(selection domain.Selection, date, today types.DateString) (domain.Selection, Outcome, error) {
	if !m.engine.IsSelectable(date, today) {
		return selection, OutcomeIgnored, nil
	}

	switch selection.State() {
	case domain.SelectionEmpty, domain.SelectionComplete:
		return domain.Selection{CheckIn: date}, OutcomeCheckInSet, nil
	}

	checkIn := selection.CheckIn

	if date.IsBefore(checkIn) {
		return domain.Selection{CheckIn: date}, OutcomeCheckInMoved, nil
	}

	if date.Equal(checkIn) {
		return selection, OutcomeRejected, fmt.Errorf("%w: %s", ErrZeroNightStay, date)
	}

	if !m.engine.IsRangeFree(checkIn, date) {
		return selection, OutcomeRejected, fmt.Errorf("%w: %s - %s", ErrRangeNotAvailable, checkIn, date)
	}

	return domain.Selection{CheckIn: checkIn, CheckOut: date}, OutcomeCompleted, nil
}
