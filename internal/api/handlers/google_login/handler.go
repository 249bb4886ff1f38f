package google_login

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/service/auth"
)

const msgGoogleDisabled = "google sign-in is not available"

type AuthService interface {
	GoogleAuthURL(ctx context.Context) (string, error)
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

// Handle GET /api/v1/auth/google/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.service.GoogleAuthURL(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrGoogleDisabled):
			h.logger.Warn("GET /auth/google/login - Google sign-in disabled")
			handlers.RespondNotFound(w, msgGoogleDisabled)
		default:
			h.logger.Error("GET /auth/google/login - Failed to build consent url: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}
