package select_date

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_date: invalid input data")

	// ErrInvalidSelection возвращается, когда текущий выбор нарушает порядок дат
	ErrInvalidSelection = errors.New("select_date: invalid date selection")
)
