package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
)

// UseCase use case для построения календаря доступности
type UseCase struct {
	engine       *calendar.Engine
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine *calendar.Engine, location *time.Location, logger Logger) *UseCase {
	return &UseCase{
		engine:       engine,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: month=%s, checkIn=%s, checkOut=%s",
		req.Month, req.Selection.CheckIn, req.Selection.CheckOut)

	// 1. Валидация выбора
	if err := req.Selection.Validate(); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	// 2. Сегодняшняя дата в часовом поясе отеля
	today := calendar.Today(uc.timeProvider.Now(), uc.location)

	// 3. Строим два месяца начиная с якорного
	anchor := calendar.ResolveAnchor(req.Month, req.Selection, today)
	view := calendar.BuildView(uc.engine, anchor, today, req.Selection)

	return toResponse(view), nil
}

func toResponse(view calendar.View) *Response {
	months := make([]Month, 0, len(view.Months))
	for _, m := range view.Months {
		days := make([]Day, 0, len(m.Days))
		for _, d := range m.Days {
			days = append(days, Day{
				Date:     d.Date,
				Day:      d.Day,
				Disabled: d.Disabled,
				Muted:    d.Muted,
				Selected: d.Selected,
				IsToday:  d.Date.Equal(view.Today),
			})
		}
		months = append(months, Month{
			Key:           m.Key,
			Title:         m.Title,
			LeadingBlanks: m.LeadingBlanks,
			Days:          days,
		})
	}

	return &Response{
		Months:    months,
		PrevMonth: view.PrevMonth,
		NextMonth: view.NextMonth,
		CheckIn:   view.Selection.CheckIn,
		CheckOut:  view.Selection.CheckOut,
		Nights:    view.Selection.Nights(),
		Today:     view.Today,
	}
}
