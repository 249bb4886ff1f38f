package reservations

import (
	"context"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований номеров
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByUser(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
	HideForUser(ctx context.Context, id int64, userID string) error
}

// DiningRepository интерфейс репозитория бронирований ресторана
type DiningRepository interface {
	GetByUser(ctx context.Context, userID string) ([]*domain.DiningReservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
