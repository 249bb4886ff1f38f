package create_reservation

import (
	"strings"
	"time"

	createReservation "github.com/m04kA/hotel-booking-service/internal/usecase/create_reservation"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomType        string  `json:"roomType" validate:"required"`
	FirstName       string  `json:"firstName" validate:"required,max=100"`
	LastName        string  `json:"lastName" validate:"required,max=100"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	CheckIn         string  `json:"checkIn" validate:"required"`  // "2025-12-03"
	CheckOut        string  `json:"checkOut" validate:"required"` // "2025-12-06"
	Guests          int     `json:"guests" validate:"gte=1,lte=10"`
	Children        int     `json:"children" validate:"gte=0,lte=6"`
	ChildrenAges    []int   `json:"childrenAges" validate:"dive,gte=0,lte=17"`
	SpecialRequests *string `json:"specialRequests,omitempty" validate:"omitempty,max=500"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	RoomType        string  `json:"roomType"`
	RoomName        string  `json:"roomName"`
	NightPrice      float64 `json:"nightPrice"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	Guests          int     `json:"guests"`
	Children        int     `json:"children"`
	ChildrenAges    []int   `json:"childrenAges"`
	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	TotalPrice      float64 `json:"totalPrice"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID string) (*createReservation.Request, error) {
	checkIn, err := types.NewDateStringFromString(r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := types.NewDateStringFromString(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:          userID,
		RoomType:        r.RoomType,
		FirstName:       strings.TrimSpace(r.FirstName),
		LastName:        strings.TrimSpace(r.LastName),
		Email:           strings.TrimSpace(r.Email),
		Phone:           r.Phone,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          r.Guests,
		Children:        r.Children,
		ChildrenAges:    r.ChildrenAges,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createReservation.Response) ReservationResponse {
	ages := resp.ChildrenAges
	if ages == nil {
		ages = []int{}
	}

	return ReservationResponse{
		ID:              resp.ID,
		RoomType:        resp.RoomType,
		RoomName:        resp.RoomName,
		NightPrice:      resp.NightPrice,
		CheckIn:         resp.CheckIn.String(),
		CheckOut:        resp.CheckOut.String(),
		Nights:          resp.Nights,
		Guests:          resp.Guests,
		Children:        resp.Children,
		ChildrenAges:    ages,
		FirstName:       resp.FirstName,
		LastName:        resp.LastName,
		Email:           resp.Email,
		Phone:           resp.Phone,
		SpecialRequests: resp.SpecialRequests,
		TotalPrice:      resp.TotalPrice,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
