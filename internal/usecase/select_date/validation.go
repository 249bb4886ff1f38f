package select_date

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Selection.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	return nil
}
