package select_date

import (
	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель клика по дню календаря
type Request struct {
	Selection domain.Selection // Выбор до клика
	Date      types.DateString // Дата, по которой кликнули
}

// Response модель результата клика
type Response struct {
	CheckIn  types.DateString
	CheckOut types.DateString
	Nights   int
	Outcome  calendar.Outcome
	Query    string // строка запроса для адреса страницы: checkIn=...&checkOut=...
	Reason   string // причина отказа, только для OutcomeRejected
}

// Rejected возвращает true, если клик отклонен и выбор не изменился
func (r *Response) Rejected() bool {
	return r.Outcome == calendar.OutcomeRejected
}
