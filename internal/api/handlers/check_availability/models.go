package check_availability

import (
	"net/url"

	checkAvailability "github.com/m04kA/hotel-booking-service/internal/usecase/check_availability"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Available  bool     `json:"available"`
	Nights     int      `json:"nights"`
	Reason     string   `json:"reason,omitempty"`
	NightPrice *float64 `json:"nightPrice,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

func parseQuery(q url.Values) (*checkAvailability.Request, error) {
	checkIn, err := types.NewDateStringFromString(q.Get("checkIn"))
	if err != nil {
		return nil, err
	}
	checkOut, err := types.NewDateStringFromString(q.Get("checkOut"))
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
		RoomType: q.Get("roomType"),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) AvailabilityResponse {
	return AvailabilityResponse{
		CheckIn:    resp.CheckIn.String(),
		CheckOut:   resp.CheckOut.String(),
		Available:  resp.Available,
		Nights:     resp.Nights,
		Reason:     resp.Reason,
		NightPrice: resp.NightPrice,
		TotalPrice: resp.TotalPrice,
	}
}
