package calendar

import (
	"errors"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

var (
	// ErrRangeNotAvailable возвращается, когда между заездом и выездом есть занятые ночи
	ErrRangeNotAvailable = errors.New(domain.RangeNotAvailableMessage)

	// ErrZeroNightStay возвращается при повторном клике по дате заезда
	ErrZeroNightStay = errors.New(domain.ZeroNightStayMessage)
)
