package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	checkAvailability "github.com/m04kA/hotel-booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidDates = "checkIn and checkOut are required in YYYY-MM-DD format"
	msgInvalidRange = "check-out date must be after check-in date"
	msgRoomNotFound = "room not found"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query %q: %v", r.URL.RawQuery, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /availability - Room not found: room=%s", req.RoomType)
			handlers.RespondNotFound(w, msgRoomNotFound)
		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
