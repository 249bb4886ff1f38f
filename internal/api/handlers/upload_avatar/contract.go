package upload_avatar

import (
	"context"

	"github.com/m04kA/hotel-booking-service/internal/service/profile/models"
)

type ProfileService interface {
	UploadAvatar(ctx context.Context, userID string, req *models.UploadAvatarRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
