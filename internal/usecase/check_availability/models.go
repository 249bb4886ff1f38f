package check_availability

import "github.com/m04kA/hotel-booking-service/pkg/types"

// Request модель запроса проверки доступности
type Request struct {
	CheckIn  types.DateString
	CheckOut types.DateString
	RoomType string // Тип номера для расчета стоимости (опционально)
}

// Response модель ответа проверки доступности
type Response struct {
	CheckIn    types.DateString
	CheckOut   types.DateString
	Available  bool
	Nights     int
	Reason     string   // причина недоступности
	NightPrice *float64 // только если указан тип номера
	TotalPrice *float64
}
