package hide_reservation

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/service/reservations"
)

const (
	msgInvalidID           = "invalid reservation id"
	msgReservationNotFound = "reservation not found"
)

type ReservationService interface {
	Hide(ctx context.Context, id int64, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{id}/hide
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Hide(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			// Чужое бронирование неотличимо от несуществующего
			handlers.RespondNotFound(w, msgReservationNotFound)
		default:
			h.logger.Error("PATCH /reservations/{id}/hide - Failed to hide: id=%d, user_id=%s, error=%v", id, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/hide - Reservation hidden: id=%d, user_id=%s", id, userID)
	w.WriteHeader(http.StatusNoContent)
}
