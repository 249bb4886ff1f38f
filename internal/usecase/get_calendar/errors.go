package get_calendar

import "errors"

var (
	// ErrInvalidSelection возвращается, когда выезд указан без заезда или не позже него
	ErrInvalidSelection = errors.New("get_calendar: invalid date selection")
)
