package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	reservationRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/reservation"
	"github.com/m04kA/hotel-booking-service/internal/service/reservations/models"
)

// Service сервис истории бронирований пользователя
type Service struct {
	reservationRepo ReservationRepository
	diningRepo      DiningRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	diningRepo DiningRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		diningRepo:      diningRepo,
		logger:          logger,
	}
}

// GetByID получает бронирование номера по ID.
// Чужое или скрытое бронирование считается ненайденным.
func (s *Service) GetByID(ctx context.Context, id int64, userID string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%s", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !reservation.IsVisibleTo(userID) {
		s.logger.Warn("GetByID: reservation id=%d is not visible to user=%s", id, userID)
		return nil, ErrReservationNotFound
	}

	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований номеров, новые первыми
func (s *Service) GetUserReservations(ctx context.Context, userID string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByUser(ctx, domain.ReservationsFilter{UserID: userID})
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%s", len(reservations), userID)
	return models.FromDomainReservationList(reservations), nil
}

// Hide скрывает бронирование из истории пользователя
func (s *Service) Hide(ctx context.Context, id int64, userID string) error {
	s.logger.Info("Hide: hiding reservation id=%d for user=%s", id, userID)

	if err := s.reservationRepo.HideForUser(ctx, id, userID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Hide: reservation id=%d not found for user=%s", id, userID)
			return ErrReservationNotFound
		}
		s.logger.Error("Hide: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Hide - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetUserDiningReservations получает историю бронирований ресторана, новые первыми
func (s *Service) GetUserDiningReservations(ctx context.Context, userID string) (*models.DiningReservationListResponse, error) {
	s.logger.Info("GetUserDiningReservations: fetching dining reservations for user=%s", userID)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	reservations, err := s.diningRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserDiningReservations: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserDiningReservations - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDiningReservationList(reservations), nil
}
