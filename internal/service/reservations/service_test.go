package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	reservationRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/reservation"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

type mockReservationRepo struct{ mock.Mock }

func (m *mockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) GetByUser(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	args := m.Called(ctx, filter)
	if r := args.Get(0); r != nil {
		return r.([]*domain.Reservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservationRepo) HideForUser(ctx context.Context, id int64, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

type mockDiningRepo struct{ mock.Mock }

func (m *mockDiningRepo) GetByUser(ctx context.Context, userID string) ([]*domain.DiningReservation, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]*domain.DiningReservation), args.Error(1)
	}
	return nil, args.Error(1)
}

func newTestService() (*Service, *mockReservationRepo, *mockDiningRepo) {
	rooms := &mockReservationRepo{}
	dining := &mockDiningRepo{}
	return NewService(rooms, dining, logger.NewNop()), rooms, dining
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		reservation *domain.Reservation
		repoErr     error
		expectedErr error
	}{
		{"owner", &domain.Reservation{ID: 7, UserID: "u-1", CheckIn: "2025-12-03", CheckOut: "2025-12-06"}, nil, nil},
		{"other user", &domain.Reservation{ID: 7, UserID: "u-2"}, nil, ErrReservationNotFound},
		{"hidden", &domain.Reservation{ID: 7, UserID: "u-1", HiddenByUser: true}, nil, ErrReservationNotFound},
		{"missing", nil, reservationRepo.ErrReservationNotFound, ErrReservationNotFound},
		{"repository failure", nil, errors.New("connection reset"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, rooms, _ := newTestService()
			rooms.On("GetByID", ctx, int64(7)).Return(tt.reservation, tt.repoErr)

			resp, err := service.GetByID(ctx, 7, "u-1")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, resp)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2025-12-03", resp.CheckIn)
			assert.Equal(t, []int{}, resp.ChildrenAges)
		})
	}
}

func TestGetUserReservations(t *testing.T) {
	ctx := context.Background()
	service, rooms, _ := newTestService()

	rooms.On("GetByUser", ctx, domain.ReservationsFilter{UserID: "u-1"}).Return([]*domain.Reservation{
		{ID: 2, UserID: "u-1", RoomType: "garden-villa"},
		{ID: 1, UserID: "u-1", RoomType: "canopy-room"},
	}, nil)

	resp, err := service.GetUserReservations(ctx, "u-1")

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, int64(2), resp.Reservations[0].ID)
	rooms.AssertExpectations(t)
}

func TestGetUserReservations_Empty(t *testing.T) {
	ctx := context.Background()
	service, rooms, _ := newTestService()

	rooms.On("GetByUser", ctx, mock.Anything).Return(nil, nil)

	resp, err := service.GetUserReservations(ctx, "u-1")

	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
	assert.Empty(t, resp.Reservations)
}

func TestGetUserReservations_MissingUser(t *testing.T) {
	service, _, _ := newTestService()

	_, err := service.GetUserReservations(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHide(t *testing.T) {
	ctx := context.Background()
	service, rooms, _ := newTestService()

	rooms.On("HideForUser", ctx, int64(1), "u-1").Return(nil)
	rooms.On("HideForUser", ctx, int64(2), "u-1").Return(reservationRepo.ErrReservationNotFound)
	rooms.On("HideForUser", ctx, int64(3), "u-1").Return(reservationRepo.ErrExecQuery)

	assert.NoError(t, service.Hide(ctx, 1, "u-1"))
	assert.ErrorIs(t, service.Hide(ctx, 2, "u-1"), ErrReservationNotFound)
	assert.ErrorIs(t, service.Hide(ctx, 3, "u-1"), ErrInternal)
}

func TestGetUserDiningReservations(t *testing.T) {
	ctx := context.Background()
	service, _, dining := newTestService()
	group := domain.ChildrenOver15

	dining.On("GetByUser", ctx, "u-1").Return([]*domain.DiningReservation{
		{ID: 3, UserID: "u-1", TimeCategory: domain.MealDinner, Time: "19:30", ChildrenAgeGroup: &group, Status: domain.DiningStatusPending},
	}, nil)

	resp, err := service.GetUserDiningReservations(ctx, "u-1")

	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, "dinner", resp.Reservations[0].TimeCategory)
	assert.Equal(t, "19:30", resp.Reservations[0].Time)
	require.NotNil(t, resp.Reservations[0].ChildrenAgeGroup)
	assert.Equal(t, "over15", *resp.Reservations[0].ChildrenAgeGroup)
	assert.Equal(t, "pending", resp.Reservations[0].Status)
}
