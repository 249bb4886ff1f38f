package select_date

import (
	"github.com/m04kA/hotel-booking-service/internal/domain"
	selectDate "github.com/m04kA/hotel-booking-service/internal/usecase/select_date"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Date     string  `json:"date" validate:"required"` // "2025-12-14"
}

// SelectDateResponse HTTP response model
type SelectDateResponse struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Nights   int     `json:"nights"`
	Outcome  string  `json:"outcome"`
	Query    string  `json:"query"`
}

// RejectedResponse тело ответа 409: выбор не изменился
type RejectedResponse struct {
	Code     int     `json:"code"`
	Message  string  `json:"message"`
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
	Outcome  string  `json:"outcome"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest() (*selectDate.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}
	checkIn, err := optionalDate(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := optionalDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &selectDate.Request{
		Selection: domain.Selection{CheckIn: checkIn, CheckOut: checkOut},
		Date:      date,
	}, nil
}

func optionalDate(raw *string) (types.DateString, error) {
	if raw == nil || *raw == "" {
		return "", nil
	}
	return types.NewDateStringFromString(*raw)
}

func dateOrNil(d types.DateString) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *selectDate.Response) SelectDateResponse {
	return SelectDateResponse{
		CheckIn:  dateOrNil(resp.CheckIn),
		CheckOut: dateOrNil(resp.CheckOut),
		Nights:   resp.Nights,
		Outcome:  string(resp.Outcome),
		Query:    resp.Query,
	}
}

func newRejectedResponse(code int, resp *selectDate.Response) RejectedResponse {
	return RejectedResponse{
		Code:     code,
		Message:  resp.Reason,
		CheckIn:  dateOrNil(resp.CheckIn),
		CheckOut: dateOrNil(resp.CheckOut),
		Outcome:  string(resp.Outcome),
	}
}
