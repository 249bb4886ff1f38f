package domain

import (
	"errors"
	"fmt"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// ErrInvalidBookedRange is returned when a booked range does not satisfy Start < End
var ErrInvalidBookedRange = errors.New("invalid booked range")

// BookedRange is an unavailable half-open interval [Start, End).
// Start is the first unavailable night, End is the check-out date of the
// existing stay and therefore a valid check-in date for a new one.
type BookedRange struct {
	Start types.DateString
	End   types.DateString
}

// Validate checks the Start < End invariant
func (r BookedRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidBookedRange)
	}
	if !r.Start.IsBefore(r.End) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidBookedRange, r.Start, r.End)
	}
	return nil
}

// Contains reports whether date falls inside [Start, End)
func (r BookedRange) Contains(date types.DateString) bool {
	return !date.IsBefore(r.Start) && date.IsBefore(r.End)
}

// Overlaps reports whether the half-open interval [from, to) overlaps [Start, End).
// Back-to-back intervals (to == Start or from == End) do not overlap.
func (r BookedRange) Overlaps(from, to types.DateString) bool {
	return from.IsBefore(r.End) && to.IsAfter(r.Start)
}
