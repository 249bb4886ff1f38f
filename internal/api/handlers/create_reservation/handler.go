package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	createReservation "github.com/m04kA/hotel-booking-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgRoomNotFound       = "room not found"
	msgDateInPast         = "check-in date is in the past"
	msgStayTooLong        = "stay is too long"
	msgInvalidInput       = "invalid reservation data"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRangeNotAvailable):
			h.logger.Warn("POST /reservations - Range not available: user_id=%s, %s..%s", userID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, domain.RangeNotAvailableMessage)
		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room=%s", req.RoomType)
			handlers.RespondNotFound(w, msgRoomNotFound)
		case errors.Is(err, createReservation.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, createReservation.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
