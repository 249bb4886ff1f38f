package get_calendar

import (
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель запроса календаря
type Request struct {
	Month     types.MonthString // Первый отображаемый месяц (опционально)
	Selection domain.Selection  // Текущий выбор из адресной строки
}

// Response модель ответа: два месяца с состоянием каждого дня
type Response struct {
	Months    []Month
	PrevMonth types.MonthString
	NextMonth types.MonthString
	CheckIn   types.DateString
	CheckOut  types.DateString
	Nights    int
	Today     types.DateString
}

// Month модель месяца календаря
type Month struct {
	Key           types.MonthString
	Title         string
	LeadingBlanks int
	Days          []Day
}

// Day модель дня календаря
type Day struct {
	Date     types.DateString
	Day      int
	Disabled bool
	Muted    bool
	Selected bool
	IsToday  bool
}
