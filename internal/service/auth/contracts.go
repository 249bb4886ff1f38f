package auth

import (
	"context"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/integrations/google"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByProvider(ctx context.Context, provider domain.AuthProvider, providerID string) (*domain.User, error)
	LinkProvider(ctx context.Context, id string, provider domain.AuthProvider, providerID string) error
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error)
}

// SessionStore интерфейс хранилища сессий
type SessionStore interface {
	Create(ctx context.Context, userID string) (*domain.Session, error)
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
	CreateState(ctx context.Context) (string, error)
	ConsumeState(ctx context.Context, state string) error
}

// GoogleClient интерфейс клиента Google OAuth
type GoogleClient interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*google.Profile, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder учет попыток входа
type MetricsRecorder interface {
	IncAuthAttempt(method, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
