package google_callback

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/service/auth"
	"github.com/m04kA/hotel-booking-service/internal/service/auth/models"
)

const (
	msgMissingParams  = "state and code are required"
	msgInvalidState   = "sign-in link expired, please try again"
	msgGoogleFailed   = "google did not confirm your account"
	msgGoogleDisabled = "google sign-in is not available"
)

type AuthService interface {
	GoogleCallback(ctx context.Context, req *models.GoogleCallbackRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service         AuthService
	successRedirect string
	logger          Logger
}

// NewHandler successRedirect - страница фронтенда, получающая токен во фрагменте адреса
func NewHandler(service AuthService, successRedirect string, logger Logger) *Handler {
	return &Handler{
		service:         service,
		successRedirect: successRedirect,
		logger:          logger,
	}
}

// Handle GET /api/v1/auth/google/callback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if errParam := q.Get("error"); errParam != "" {
		h.logger.Warn("GET /auth/google/callback - Consent denied: %s", errParam)
		handlers.RespondUnauthorized(w, msgGoogleFailed)
		return
	}

	req := &models.GoogleCallbackRequest{State: q.Get("state"), Code: q.Get("code")}
	if req.State == "" || req.Code == "" {
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.service.GoogleCallback(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidState):
			h.logger.Warn("GET /auth/google/callback - Invalid state")
			handlers.RespondBadRequest(w, msgInvalidState)
		case errors.Is(err, auth.ErrGoogleAuthFailed):
			h.logger.Warn("GET /auth/google/callback - Google auth failed: %v", err)
			handlers.RespondUnauthorized(w, msgGoogleFailed)
		case errors.Is(err, auth.ErrGoogleDisabled):
			handlers.RespondNotFound(w, msgGoogleDisabled)
		default:
			h.logger.Error("GET /auth/google/callback - Failed to complete sign-in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /auth/google/callback - User signed in: user_id=%s", result.User.ID)

	// Токен во фрагменте не попадает в логи и Referer
	http.Redirect(w, r, h.successRedirect+"#token="+url.QueryEscape(result.Token), http.StatusFound)
}
