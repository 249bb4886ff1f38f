package update_profile

import "github.com/m04kA/hotel-booking-service/internal/service/profile/models"

// UpdateProfileRequest HTTP request model; отсутствующие поля не изменяются
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	PhotoURL    *string `json:"photoUrl,omitempty" validate:"omitempty,url,max=2048"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest() *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		DisplayName: r.DisplayName,
		PhotoURL:    r.PhotoURL,
	}
}
