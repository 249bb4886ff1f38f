package create_dining_reservation

import (
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.TimeCategory.IsValid() {
		return fmt.Errorf("%w: unknown time category %q", ErrInvalidInput, req.TimeCategory)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.ExperienceID == "" {
		return fmt.Errorf("%w: experienceId is required", ErrInvalidInput)
	}

	if err := validateParty(req); err != nil {
		return err
	}

	if req.SpecialRequest != nil && utf8.RuneCountInString(*req.SpecialRequest) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequest must be at most %d characters", ErrInvalidInput, domain.MaxSpecialRequestsLength)
	}

	return nil
}

// validateParty проверяет состав гостей
func validateParty(req *Request) error {
	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrInvalidInput)
	}

	if req.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidInput)
	}

	// Каждое значение проверяется до сложения, иначе сумма может переполниться
	if req.Adults > domain.MaxDiningPartySize || req.Children > domain.MaxDiningPartySize-req.Adults {
		return fmt.Errorf("%w: party size must be at most %d", ErrInvalidInput, domain.MaxDiningPartySize)
	}

	// Цена детского меню зависит от возрастной группы
	if req.Children > 0 {
		if req.ChildrenAgeGroup == nil {
			return fmt.Errorf("%w: childrenAgeGroup is required when children are present", ErrInvalidInput)
		}
		if !req.ChildrenAgeGroup.IsValid() {
			return fmt.Errorf("%w: unknown childrenAgeGroup %q", ErrInvalidInput, *req.ChildrenAgeGroup)
		}
	}

	return nil
}

// validateMealTime проверяет, что время попадает в часы приема пищи
func validateMealTime(req *Request) error {
	window := domain.MealWindows[req.TimeCategory]
	if !window.Contains(req.Time) {
		return fmt.Errorf("%w: %s is served %s-%s", ErrOutsideMealWindow, req.TimeCategory, window.From, window.To)
	}
	return nil
}
