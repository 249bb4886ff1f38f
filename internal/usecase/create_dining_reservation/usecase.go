package create_dining_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
)

const metricsKind = "dining"

// UseCase use case для бронирования столика с программой ужина
type UseCase struct {
	diningRepo   DiningRepository
	userRepo     UserRepository
	location     *time.Location
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	diningRepo DiningRepository,
	userRepo UserRepository,
	location *time.Location,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		diningRepo:   diningRepo,
		userRepo:     userRepo,
		location:     location,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case бронирования столика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDiningReservation: user=%s, date=%s, category=%s, time=%s, adults=%d, children=%d, experience=%s",
		req.UserID, req.Date, req.TimeCategory, req.Time, req.Adults, req.Children, req.ExperienceID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDiningReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и время
	today := calendar.Today(uc.timeProvider.Now(), uc.location)
	if req.Date.IsBefore(today) {
		uc.logger.Warn("CreateDiningReservation: date %s is before today %s", req.Date, today)
		return nil, ErrDateInPast
	}
	if err := validateMealTime(req); err != nil {
		uc.logger.Warn("CreateDiningReservation: %v", err)
		return nil, err
	}

	// 3. Получаем программу из каталога
	experience, ok := domain.FindDiningExperience(req.ExperienceID)
	if !ok {
		uc.logger.Warn("CreateDiningReservation: experience=%s not found", req.ExperienceID)
		return nil, ErrExperienceNotFound
	}

	// 4. Имя и email берем из профиля
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateDiningReservation: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateDiningReservation: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 5. Расчет стоимости
	ageGroup := req.ChildrenAgeGroup
	if req.Children == 0 {
		ageGroup = nil
	}
	var group domain.ChildrenAgeGroup
	if ageGroup != nil {
		group = *ageGroup
	}
	quote := domain.QuoteDining(experience, req.Adults, req.Children, group)

	// 6. Сохраняем бронирование
	reservation := &domain.DiningReservation{
		UserID:           req.UserID,
		Name:             user.Name(),
		Email:            user.Email,
		Date:             req.Date,
		TimeCategory:     req.TimeCategory,
		Time:             req.Time,
		Adults:           req.Adults,
		Children:         req.Children,
		Guests:           req.Adults + req.Children,
		ChildrenAgeGroup: ageGroup,
		Seating:          req.Seating,
		Occasion:         req.Occasion,
		SpecialRequest:   req.SpecialRequest,
		ExperienceID:     experience.ID,
		ExperienceName:   experience.Name,
		ExperiencePrice:  quote.ExperiencePrice,
		ExperienceTotal:  quote.ExperienceTotal,
		AdultPrice:       quote.AdultPrice,
		ChildPrice:       quote.ChildPrice,
		DiningTotal:      quote.DiningTotal,
		TotalPrice:       quote.TotalPrice,
		Status:           domain.DiningStatusPending,
	}

	created, err := uc.diningRepo.Create(ctx, reservation)
	if err != nil {
		uc.logger.Error("CreateDiningReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create dining reservation: %v", ErrInternal, err)
	}

	uc.metrics.IncReservationCreated(metricsKind)
	uc.logger.Info("CreateDiningReservation: successfully created dining reservation id=%d, total=%.2f",
		created.ID, created.TotalPrice)

	return &Response{
		ID:               created.ID,
		Name:             created.Name,
		Email:            created.Email,
		Status:           created.Status,
		Date:             created.Date,
		TimeCategory:     created.TimeCategory,
		Time:             created.Time,
		Adults:           created.Adults,
		Children:         created.Children,
		Guests:           created.Guests,
		ChildrenAgeGroup: created.ChildrenAgeGroup,
		Seating:          created.Seating,
		Occasion:         created.Occasion,
		SpecialRequest:   created.SpecialRequest,
		ExperienceID:     created.ExperienceID,
		ExperienceName:   created.ExperienceName,
		Quote: domain.DiningQuote{
			ExperiencePrice: created.ExperiencePrice,
			ExperienceTotal: created.ExperienceTotal,
			AdultPrice:      created.AdultPrice,
			ChildPrice:      created.ChildPrice,
			DiningTotal:     created.DiningTotal,
			TotalPrice:      created.TotalPrice,
		},
		CreatedAt: created.CreatedAt,
	}, nil
}
