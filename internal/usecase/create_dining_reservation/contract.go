package create_dining_reservation

import (
	"context"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// DiningRepository интерфейс репозитория бронирований ресторана
type DiningRepository interface {
	Create(ctx context.Context, reservation *domain.DiningReservation) (*domain.DiningReservation, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// MetricsRecorder учет созданных бронирований
type MetricsRecorder interface {
	IncReservationCreated(kind string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
