package calendar

import (
	"time"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Today returns the civil date of now in the hotel's location.
// A nil location means UTC.
func Today(now time.Time, loc *time.Location) types.DateString {
	if loc == nil {
		loc = time.UTC
	}
	return types.NewDateString(now.In(loc))
}
