package domain

import (
	"time"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Reservation represents a room reservation made through the booking flow
type Reservation struct {
	ID     int64
	UserID string

	// Room data is denormalized so history survives catalog changes
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

	TotalPrice   float64
	HiddenByUser bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the guest name as shown on the confirmation
func (r *Reservation) FullName() string {
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// Stay returns the reserved nights as a complete selection
func (r *Reservation) Stay() Selection {
	return Selection{CheckIn: r.CheckIn, CheckOut: r.CheckOut}
}

// IsVisibleTo returns true if the reservation belongs to the user and was not hidden by them
func (r *Reservation) IsVisibleTo(userID string) bool {
	return r.UserID == userID && !r.HiddenByUser
}

// ReservationsFilter фильтр для получения бронирований пользователя
type ReservationsFilter struct {
	UserID        string // Обязательный параметр
	IncludeHidden bool   // Включать ли скрытые пользователем бронирования
}
