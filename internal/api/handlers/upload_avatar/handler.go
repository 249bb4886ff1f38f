package upload_avatar

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/internal/service/profile"
	"github.com/m04kA/hotel-booking-service/internal/service/profile/models"
)

const (
	formField = "avatar"

	// Запас на заголовки multipart сверх размера файла
	multipartOverhead = 64 << 10

	msgMissingFile      = "multipart field \"avatar\" is required"
	msgTooLarge         = "avatar must not exceed 5 MB"
	msgUnsupportedImage = "avatar must be a JPEG, PNG or WebP image"
	msgUploadDisabled   = "avatar upload is not available"
	msgUploadFailed     = "failed to upload avatar, try again later"
	msgTooManyUploads   = "avatar was changed too recently, try again later"
	msgUserNotFound     = "user not found"
)

type Handler struct {
	service ProfileService
	logger  Logger
}

func NewHandler(service ProfileService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/me/avatar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxAvatarSizeBytes+multipartOverhead)
	file, _, err := r.FormFile(formField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
			return
		}
		h.logger.Warn("POST /users/me/avatar - Missing file: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, domain.MaxAvatarSizeBytes+1))
	if err != nil {
		h.logger.Warn("POST /users/me/avatar - Failed to read file: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}

	// Тип определяем по содержимому, заголовку клиента не доверяем
	req := &models.UploadAvatarRequest{
		Data:        data,
		ContentType: http.DetectContentType(data),
	}

	result, err := h.service.UploadAvatar(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrAvatarTooLarge):
			handlers.RespondError(w, http.StatusRequestEntityTooLarge, msgTooLarge)
		case errors.Is(err, profile.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingFile)
		case errors.Is(err, profile.ErrUnsupportedImage):
			handlers.RespondError(w, http.StatusUnsupportedMediaType, msgUnsupportedImage)
		case errors.Is(err, profile.ErrUploadDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgUploadDisabled)
		case errors.Is(err, profile.ErrTooManyUploads):
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyUploads)
		case errors.Is(err, profile.ErrUploadFailed):
			h.logger.Error("POST /users/me/avatar - Upload failed: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)
		case errors.Is(err, profile.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("POST /users/me/avatar - Failed to update avatar: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/me/avatar - Avatar updated: user_id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
