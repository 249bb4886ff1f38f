package get_me

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/service/auth"
	"github.com/m04kA/hotel-booking-service/internal/service/auth/models"
)

const msgUserNotFound = "user not found"

type AuthService interface {
	Me(ctx context.Context, userID string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			// Сессия пережила пользователя
			h.logger.Warn("GET /auth/me - User not found: user_id=%s", userID)
			handlers.RespondUnauthorized(w, msgUserNotFound)
		default:
			h.logger.Error("GET /auth/me - Failed to get user: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
