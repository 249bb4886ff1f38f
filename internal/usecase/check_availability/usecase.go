package check_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

const reasonPastDate = "check-in date is in the past"

// reasonStayTooLong совпадает с ограничением при создании бронирования
var reasonStayTooLong = fmt.Sprintf("stay must be at most %d nights", domain.MaxStayNights)

// UseCase use case для проверки доступности диапазона дат
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

// Execute проверяет, что проживание [checkIn, checkOut) не в прошлом и не пересекает занятые ночи
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: checkIn=%s, checkOut=%s, room=%s", req.CheckIn, req.CheckOut, req.RoomType)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	stay := domain.Selection{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	resp := &Response{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: true,
		Nights:    stay.Nights(),
	}

	// 2. Стоимость, если указан номер
	if req.RoomType != "" {
		room, ok := domain.FindRoom(req.RoomType)
		if !ok {
			uc.logger.Warn("CheckAvailability: room=%s not found", req.RoomType)
			return nil, ErrRoomNotFound
		}
		resp.NightPrice = ptr.Ptr(room.NightPrice)
		resp.TotalPrice = ptr.Ptr(room.NightPrice * float64(resp.Nights))
	}

	// 3. Проверяем дату заезда, длительность и занятость
	today := calendar.Today(uc.timeProvider.Now(), uc.location)
	switch {
	case uc.engine.IsPast(req.CheckIn, today):
		resp.Available = false
		resp.Reason = reasonPastDate
	case resp.Nights > domain.MaxStayNights:
		resp.Available = false
		resp.Reason = reasonStayTooLong
	case !uc.engine.IsRangeFree(req.CheckIn, req.CheckOut):
		resp.Available = false
		resp.Reason = domain.RangeNotAvailableMessage
	}

	uc.logger.Info("CheckAvailability: available=%t", resp.Available)
	return resp, nil
}
