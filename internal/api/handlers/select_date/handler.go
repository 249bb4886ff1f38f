package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	selectDate "github.com/m04kA/hotel-booking-service/internal/usecase/select_date"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidSelection   = "check-out requires a check-in date before it"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /calendar/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /calendar/select - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /calendar/select - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrInvalidSelection):
			h.logger.Warn("POST /calendar/select - Invalid selection: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSelection)
		case errors.Is(err, selectDate.ErrInvalidInput):
			h.logger.Warn("POST /calendar/select - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("POST /calendar/select - Failed to apply click: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отказ: выбор остается прежним, клиент показывает причину
	if result.Rejected() {
		h.logger.Info("POST /calendar/select - Click rejected: date=%s, reason=%s", req.Date, result.Reason)
		handlers.RespondJSON(w, http.StatusConflict, newRejectedResponse(http.StatusConflict, result))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
