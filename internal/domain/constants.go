package domain

import "github.com/m04kA/hotel-booking-service/pkg/types"

// Time format constants
const (
	TimeFormat  = types.TimeLayout  // HH:MM
	DateFormat  = types.DateLayout  // YYYY-MM-DD
	MonthFormat = types.MonthLayout // YYYY-MM
)

// Business validation constants
const (
	MinGuests                = 1
	MaxGuests                = 10
	MaxChildren              = 6
	MaxChildAge              = 17
	MaxSpecialRequestsLength = 500
	MaxDisplayNameLength     = 100
	MinPasswordLength        = 6
	MaxAvatarSizeBytes       = 5 << 20 // 5 MB
	MaxStayNights            = 30
	MaxDiningPartySize       = 12
	DefaultSessionTTLHours   = 24 * 7
	DefaultCalendarTimezone  = "Asia/Makassar"
	DefaultGuestDisplayName  = "Guest"
	RangeNotAvailableMessage = "selected date range is not available"
	ZeroNightStayMessage     = "check-out date must be after check-in date"
)

// Currency of all catalog prices
const Currency = "USD"

// Dining price list (USD per person)
const (
	DiningAdultPrice        = 45
	DiningChildOver15Price  = 10
	DiningChildUnder15Price = 0
)

// DefaultBookedRanges is the static sample of unavailable stays used when the
// configuration does not provide its own list
var DefaultBookedRanges = []BookedRange{
	{Start: "2025-12-10", End: "2025-12-13"},
	{Start: "2025-12-18", End: "2025-12-22"},
}
