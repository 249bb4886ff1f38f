package register

import (
	"strings"

	"github.com/m04kA/hotel-booking-service/internal/service/auth/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Password:    r.Password,
		DisplayName: strings.TrimSpace(r.DisplayName),
	}
}
