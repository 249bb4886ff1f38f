package create_dining_reservation

import (
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Request модель запроса на бронирование столика
type Request struct {
	UserID string // ID пользователя из сессии

	Date         types.DateString
	TimeCategory domain.MealCategory
	Time         types.TimeString

	Adults           int
	Children         int
	ChildrenAgeGroup *domain.ChildrenAgeGroup // Обязателен, если есть дети

	Seating        *string
	Occasion       *string
	SpecialRequest *string

	ExperienceID string
}

// Response модель ответа с созданным бронированием столика
type Response struct {
	ID     int64
	Name   string
	Email  string
	Status domain.DiningStatus

	Date         types.DateString
	TimeCategory domain.MealCategory
	Time         types.TimeString

	Adults           int
	Children         int
	Guests           int
	ChildrenAgeGroup *domain.ChildrenAgeGroup

	Seating        *string
	Occasion       *string
	SpecialRequest *string

	ExperienceID   string
	ExperienceName string
	Quote          domain.DiningQuote

	CreatedAt time.Time
}
