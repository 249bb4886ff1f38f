package models

import (
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// UpdateProfileRequest запрос на изменение профиля; nil поля не изменяются
type UpdateProfileRequest struct {
	DisplayName *string
	PhotoURL    *string
}

// UploadAvatarRequest запрос на загрузку аватара
type UploadAvatarRequest struct {
	Data        []byte
	ContentType string
}

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	PhotoURL    *string   `json:"photoUrl,omitempty"`
	Provider    string    `json:"provider"`
	HasPassword bool      `json:"hasPassword"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *ProfileResponse {
	if u == nil {
		return nil
	}
	return &ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.Name(),
		PhotoURL:    u.PhotoURL,
		Provider:    string(u.Provider),
		HasPassword: u.HasPassword(),
		UpdatedAt:   u.UpdatedAt,
	}
}
