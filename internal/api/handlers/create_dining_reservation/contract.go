package create_dining_reservation

import (
	"context"

	createDining "github.com/m04kA/hotel-booking-service/internal/usecase/create_dining_reservation"
)

type CreateDiningReservationUseCase interface {
	Execute(ctx context.Context, req *createDining.Request) (*createDining.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
