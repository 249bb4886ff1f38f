package create_dining_reservation

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда программа ужина не найдена в каталоге
	ErrExperienceNotFound = errors.New("create_dining_reservation: experience not found")

	// ErrUserNotFound возвращается, когда пользователь из сессии не найден
	ErrUserNotFound = errors.New("create_dining_reservation: user not found")

	// ErrDateInPast возвращается, когда дата раньше сегодняшней
	ErrDateInPast = errors.New("create_dining_reservation: date is in the past")

	// ErrOutsideMealWindow возвращается, когда время не попадает в часы выбранного приема пищи
	ErrOutsideMealWindow = errors.New("create_dining_reservation: time is outside of the meal window")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_dining_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_dining_reservation: internal error")
)
