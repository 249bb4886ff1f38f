package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrRoomNotFound возвращается, когда тип номера не найден в каталоге
	ErrRoomNotFound = errors.New("check_availability: room not found")
)
