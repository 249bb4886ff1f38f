package create_reservation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.RoomType == "" {
		return fmt.Errorf("%w: roomType is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if !req.CheckIn.IsBefore(req.CheckOut) {
		return fmt.Errorf("%w: checkOut must be after checkIn", ErrInvalidInput)
	}

	if err := validateParty(req.Guests, req.Children, req.ChildrenAges); err != nil {
		return err
	}

	if req.SpecialRequests != nil && utf8.RuneCountInString(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateParty проверяет количество гостей и возраст детей
func validateParty(guests, children int, ages []int) error {
	if guests < domain.MinGuests || guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidInput, domain.MinGuests, domain.MaxGuests)
	}

	if children < 0 || children > domain.MaxChildren {
		return fmt.Errorf("%w: children must be between 0 and %d", ErrInvalidInput, domain.MaxChildren)
	}

	// Возраст указывается для каждого ребенка
	if len(ages) != children {
		return fmt.Errorf("%w: expected %d children ages, got %d", ErrInvalidInput, children, len(ages))
	}

	for i, age := range ages {
		if age < 0 || age > domain.MaxChildAge {
			return fmt.Errorf("%w: age of child #%d must be between 0 and %d", ErrInvalidInput, i+1, domain.MaxChildAge)
		}
	}

	return nil
}

// validateStay проверяет даты проживания относительно сегодняшнего дня
func validateStay(checkIn, checkOut, today types.DateString) error {
	if checkIn.IsBefore(today) {
		return ErrDateInPast
	}

	if nights := checkIn.DaysUntil(checkOut); nights > domain.MaxStayNights {
		return fmt.Errorf("%w: %d nights, at most %d allowed", ErrStayTooLong, nights, domain.MaxStayNights)
	}

	return nil
}
