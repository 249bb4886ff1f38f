package models

import (
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// RegisterRequest запрос на регистрацию
type RegisterRequest struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginRequest запрос на вход по паролю
type LoginRequest struct {
	Email    string
	Password string
}

// GoogleCallbackRequest параметры возврата с страницы согласия Google
type GoogleCallbackRequest struct {
	State string
	Code  string
}

// UserResponse публичные данные пользователя
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	Provider    string    `json:"provider"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse ответ с токеном сессии
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.Name(),
		PhotoURL:    u.PhotoURL,
		Provider:    string(u.Provider),
		CreatedAt:   u.CreatedAt,
	}
}

// NewAuthResponse собирает ответ из сессии и пользователя
func NewAuthResponse(session *domain.Session, u *domain.User) *AuthResponse {
	return &AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      *FromDomainUser(u),
	}
}
