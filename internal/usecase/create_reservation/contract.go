package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований номеров
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
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
