package create_reservation

import (
	"errors"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда тип номера не найден в каталоге
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrDateInPast возвращается, когда дата заезда раньше сегодняшней
	ErrDateInPast = errors.New("create_reservation: check-in date is in the past")

	// ErrStayTooLong возвращается, когда проживание превышает допустимое число ночей
	ErrStayTooLong = errors.New("create_reservation: stay is too long")

	// ErrRangeNotAvailable возвращается, когда диапазон пересекает занятые ночи
	ErrRangeNotAvailable = errors.New("create_reservation: " + domain.RangeNotAvailableMessage)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
