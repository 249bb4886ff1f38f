package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	getCalendar "github.com/m04kA/hotel-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidQuery     = "invalid query: month must be YYYY-MM, checkIn and checkOut must be YYYY-MM-DD"
	msgInvalidSelection = "check-out requires a check-in date before it"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid query %q: %v", r.URL.RawQuery, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidSelection):
			h.logger.Warn("GET /calendar - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)
		default:
			h.logger.Error("GET /calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
