package create_reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
)

const metricsKind = "room"

// UseCase use case для бронирования номера
type UseCase struct {
	reservationRepo ReservationRepository
	engine          *calendar.Engine
	location        *time.Location
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	engine *calendar.Engine,
	location *time.Location,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		engine:          engine,
		location:        location,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case бронирования номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, room=%s, checkIn=%s, checkOut=%s, guests=%d, children=%d",
		req.UserID, req.RoomType, req.CheckIn, req.CheckOut, req.Guests, req.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем даты относительно сегодняшнего дня
	today := calendar.Today(uc.timeProvider.Now(), uc.location)
	if err := validateStay(req.CheckIn, req.CheckOut, today); err != nil {
		uc.logger.Warn("CreateReservation: stay validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем номер из каталога
	room, ok := domain.FindRoom(req.RoomType)
	if !ok {
		uc.logger.Warn("CreateReservation: room=%s not found", req.RoomType)
		return nil, ErrRoomNotFound
	}

	// 4. Проверяем, что ночи свободны
	if !uc.engine.IsRangeFree(req.CheckIn, req.CheckOut) {
		uc.logger.Warn("CreateReservation: range %s - %s is not available", req.CheckIn, req.CheckOut)
		return nil, ErrRangeNotAvailable
	}

	// 5. Создаем бронирование с денормализацией данных номера
	nights := req.CheckIn.DaysUntil(req.CheckOut)
	reservation := &domain.Reservation{
		UserID:          req.UserID,
		RoomType:        room.ID,
		RoomName:        room.Name,
		NightPrice:      room.NightPrice,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Nights:          nights,
		Guests:          req.Guests,
		Children:        req.Children,
		ChildrenAges:    req.ChildrenAges,
		FirstName:       strings.TrimSpace(req.FirstName),
		LastName:        strings.TrimSpace(req.LastName),
		Email:           strings.TrimSpace(req.Email),
		Phone:           req.Phone,
		SpecialRequests: req.SpecialRequests,
		TotalPrice:      room.NightPrice * float64(nights),
	}

	// 6. Сохраняем бронирование
	created, err := uc.reservationRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated(metricsKind)
	uc.logger.Info("CreateReservation: successfully created reservation id=%d, nights=%d, total=%.2f",
		created.ID, created.Nights, created.TotalPrice)

	return &Response{
		ID:              created.ID,
		RoomType:        created.RoomType,
		RoomName:        created.RoomName,
		NightPrice:      created.NightPrice,
		CheckIn:         created.CheckIn,
		CheckOut:        created.CheckOut,
		Nights:          created.Nights,
		Guests:          created.Guests,
		Children:        created.Children,
		ChildrenAges:    created.ChildrenAges,
		FirstName:       created.FirstName,
		LastName:        created.LastName,
		Email:           created.Email,
		Phone:           created.Phone,
		SpecialRequests: created.SpecialRequests,
		TotalPrice:      created.TotalPrice,
		CreatedAt:       created.CreatedAt,
	}, nil
}
