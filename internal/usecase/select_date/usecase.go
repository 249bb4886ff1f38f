package select_date

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// UseCase use case для обработки клика по дню календаря
type UseCase struct {
	machine      *calendar.Machine
	location     *time.Location
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(machine *calendar.Machine, location *time.Location, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		machine:      machine,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute применяет клик к текущему выбору.
// Отказ не является ошибкой: возвращается неизмененный выбор с причиной.
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: date=%s, checkIn=%s, checkOut=%s",
		req.Date, req.Selection.CheckIn, req.Selection.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Сегодняшняя дата в часовом поясе отеля
	today := calendar.Today(uc.timeProvider.Now(), uc.location)

	// 3. Переход автомата выбора
	next, outcome, err := uc.machine.Click(req.Selection, req.Date, today)
	uc.metrics.IncCalendarClick(string(outcome))

	resp := &Response{
		CheckIn:  next.CheckIn,
		CheckOut: next.CheckOut,
		Nights:   next.Nights(),
		Outcome:  outcome,
		Query:    buildQuery(next),
	}

	if err != nil {
		uc.logger.Info("SelectDate: click on %s rejected: %v", req.Date, err)
		resp.Reason = reason(err)
		return resp, nil
	}

	uc.logger.Info("SelectDate: outcome=%s, checkIn=%s, checkOut=%s", outcome, next.CheckIn, next.CheckOut)
	return resp, nil
}

// buildQuery кодирует выбор в параметры адреса страницы
func buildQuery(selection domain.Selection) string {
	values := url.Values{}
	if !selection.CheckIn.IsZero() {
		values.Set("checkIn", selection.CheckIn.String())
	}
	if !selection.CheckOut.IsZero() {
		values.Set("checkOut", selection.CheckOut.String())
	}
	return values.Encode()
}

// reason возвращает текст для пользователя без технических деталей
func reason(err error) string {
	switch {
	case errors.Is(err, calendar.ErrZeroNightStay):
		return domain.ZeroNightStayMessage
	default:
		return domain.RangeNotAvailableMessage
	}
}
