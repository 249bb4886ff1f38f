package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
	"github.com/m04kA/hotel-booking-service/internal/integrations/cloudinary"
	"github.com/m04kA/hotel-booking-service/internal/service/profile/models"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// Service сервис профиля пользователя
type Service struct {
	userRepo UserRepository
	uploader ImageUploader // nil, если Cloudinary не настроен
	logger   Logger
}

// NewService создает новый экземпляр сервиса профиля
func NewService(userRepo UserRepository, uploader ImageUploader, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		uploader: uploader,
		logger:   logger,
	}
}

// Get возвращает профиль пользователя
func (s *Service) Get(ctx context.Context, userID string) (*models.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, s.mapRepoError("Get", userID, err)
	}
	return models.FromDomainUser(user), nil
}

// Update изменяет имя и фото профиля. Отсутствующие поля не изменяются.
func (s *Service) Update(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error) {
	s.logger.Info("Update: updating profile for user=%s", userID)

	update := domain.ProfileUpdate{PhotoURL: req.PhotoURL}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, fmt.Errorf("%w: display name must not be empty", ErrInvalidInput)
		}
		if utf8.RuneCountInString(name) > domain.MaxDisplayNameLength {
			return nil, fmt.Errorf("%w: display name must be at most %d characters", ErrInvalidInput, domain.MaxDisplayNameLength)
		}
		update.DisplayName = ptr.Ptr(name)
	}

	// Пустое изменение возвращает текущий профиль
	if update.IsEmpty() {
		return s.Get(ctx, userID)
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, s.mapRepoError("Update", userID, err)
	}

	s.logger.Info("Update: profile updated for user=%s", userID)
	return models.FromDomainUser(user), nil
}

// UploadAvatar загружает изображение в Cloudinary и сохраняет его адрес в профиле
func (s *Service) UploadAvatar(ctx context.Context, userID string, req *models.UploadAvatarRequest) (*models.ProfileResponse, error) {
	s.logger.Info("UploadAvatar: user=%s, size=%d, type=%s", userID, len(req.Data), req.ContentType)

	if s.uploader == nil {
		return nil, ErrUploadDisabled
	}
	if len(req.Data) == 0 {
		return nil, fmt.Errorf("%w: avatar file is empty", ErrInvalidInput)
	}
	if len(req.Data) > domain.MaxAvatarSizeBytes {
		return nil, ErrAvatarTooLarge
	}
	if !allowedImageTypes[req.ContentType] {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedImage, req.ContentType)
	}

	// Один аватар на пользователя: повторная загрузка перезаписывает файл
	result, err := s.uploader.UploadImage(ctx, req.Data, req.ContentType, "avatar_"+userID)
	if err != nil {
		if errors.Is(err, cloudinary.ErrRateLimited) {
			s.logger.Warn("UploadAvatar: upload rate limited for user=%s", userID)
			return nil, ErrTooManyUploads
		}
		if errors.Is(err, cloudinary.ErrInvalidRequest) {
			s.logger.Warn("UploadAvatar: image rejected for user=%s: %v", userID, err)
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
		}
		s.logger.Error("UploadAvatar: upload failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	user, err := s.userRepo.UpdateProfile(ctx, userID, domain.ProfileUpdate{PhotoURL: ptr.Ptr(result.URL)})
	if err != nil {
		return nil, s.mapRepoError("UploadAvatar", userID, err)
	}

	s.logger.Info("UploadAvatar: avatar updated for user=%s, publicID=%s", userID, result.PublicID)
	return models.FromDomainUser(user), nil
}

func (s *Service) mapRepoError(op, userID string, err error) error {
	if errors.Is(err, userRepo.ErrUserNotFound) {
		s.logger.Warn("%s: user=%s not found", op, userID)
		return ErrUserNotFound
	}
	s.logger.Error("%s: repository error for user=%s: %v", op, userID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
