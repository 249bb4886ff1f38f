package create_reservation

import (
	"time"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель запроса на бронирование номера
type Request struct {
	UserID   string // ID пользователя из сессии
	RoomType string // ID номера из каталога

	FirstName string
	LastName  string
	Email     string
	Phone     *string

	CheckIn  types.DateString
	CheckOut types.DateString

	Guests       int   // Взрослые гости
	Children     int   // Количество детей
	ChildrenAges []int // Возраст каждого ребенка, len == Children

	SpecialRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	RoomType   string
	RoomName   string
	NightPrice float64

	CheckIn  types.DateString
	CheckOut types.DateString
	Nights   int

	Guests       int
	Children     int
	ChildrenAges []int

	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	SpecialRequests *string

	TotalPrice float64
	CreatedAt  time.Time
}
