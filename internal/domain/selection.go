package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidSelection is returned when a selection violates its invariant
var ErrInvalidSelection = errors.New("invalid date selection")

// SelectionState is the phase of a check-in/check-out selection
type SelectionState string

const (
	SelectionEmpty       SelectionState = "empty"
	SelectionCheckInOnly SelectionState = "check_in_only"
	SelectionComplete    SelectionState = "complete"
)

// Selection is the check-in/check-out pair chosen on the calendar.
// It is owned by the caller and replaced, never mutated, on every accepted click.
// An empty DateString stands for "not chosen".
type Selection struct {
	CheckIn  types.DateString
	CheckOut types.DateString
}

// State returns the phase of the selection
func (s Selection) State() SelectionState {
	switch {
	case s.CheckIn.IsZero():
		return SelectionEmpty
	case s.CheckOut.IsZero():
		return SelectionCheckInOnly
	default:
		return SelectionComplete
	}
}

// IsComplete returns true if both dates are chosen
func (s Selection) IsComplete() bool {
	return s.State() == SelectionComplete
}

// Validate checks that CheckOut is only set together with an earlier CheckIn
func (s Selection) Validate() error {
	if s.CheckOut.IsZero() {
		return nil
	}
	if s.CheckIn.IsZero() {
		return fmt.Errorf("%w: check-out without check-in", ErrInvalidSelection)
	}
	if !s.CheckIn.IsBefore(s.CheckOut) {
		return fmt.Errorf("%w: check-in %s must be before check-out %s", ErrInvalidSelection, s.CheckIn, s.CheckOut)
	}
	return nil
}

// Nights returns the number of nights of a complete selection, 0 otherwise
func (s Selection) Nights() int {
	if !s.IsComplete() {
		return 0
	}
	return s.CheckIn.DaysUntil(s.CheckOut)
}
