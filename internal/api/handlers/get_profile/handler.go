package get_profile

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/service/profile"
	"github.com/m04kA/hotel-booking-service/internal/service/profile/models"
)

const msgUserNotFound = "user not found"

type ProfileService interface {
	Get(ctx context.Context, userID string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

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

// Handle GET /api/v1/users/me/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		default:
			h.logger.Error("GET /users/me/profile - Failed to get profile: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
