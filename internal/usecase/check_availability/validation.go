package check_availability

import (
	"fmt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	stay := domain.Selection{CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	if err := stay.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
