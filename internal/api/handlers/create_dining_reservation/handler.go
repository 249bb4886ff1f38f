package create_dining_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	createDining "github.com/m04kA/hotel-booking-service/internal/usecase/create_dining_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgExperienceNotFound = "dining experience not found"
	msgDateInPast         = "reservation date is in the past"
	msgOutsideMealWindow  = "selected time is outside of the meal hours"
	msgInvalidInput       = "invalid dining reservation data"
	msgUserNotFound       = "user not found"
)

type Handler struct {
	useCase CreateDiningReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateDiningReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/dining/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "unauthorized")
		return
	}

	var req CreateDiningReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dining/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /dining/reservations - Validation failed: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /dining/reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createDining.ErrExperienceNotFound):
			handlers.RespondNotFound(w, msgExperienceNotFound)
		case errors.Is(err, createDining.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)
		case errors.Is(err, createDining.ErrOutsideMealWindow):
			handlers.RespondBadRequest(w, msgOutsideMealWindow)
		case errors.Is(err, createDining.ErrInvalidInput):
			h.logger.Warn("POST /dining/reservations - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		case errors.Is(err, createDining.ErrUserNotFound):
			handlers.RespondUnauthorized(w, msgUserNotFound)
		default:
			h.logger.Error("POST /dining/reservations - Failed to create: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /dining/reservations - Created: id=%d, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
