package models

import (
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// ReservationResponse ответ с данными бронирования номера
type ReservationResponse struct {
	ID         int64   `json:"id"`
	RoomType   string  `json:"roomType"`
	RoomName   string  `json:"roomName"`
	NightPrice float64 `json:"nightPrice"`
	CheckIn    string  `json:"checkIn"`  // "2025-12-03"
	CheckOut   string  `json:"checkOut"` // "2025-12-06"
	Nights     int     `json:"nights"`

	Guests       int   `json:"guests"`
	Children     int   `json:"children"`
	ChildrenAges []int `json:"childrenAges"`

	FirstName       string  `json:"firstName"`
	LastName        string  `json:"lastName"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReservationListResponse ответ со списком бронирований номеров
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DiningReservationResponse ответ с данными бронирования столика
type DiningReservationResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Date             string  `json:"date"`
	TimeCategory     string  `json:"timeCategory"`
	Time             string  `json:"time"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	Guests           int     `json:"guests"`
	ChildrenAgeGroup *string `json:"childrenAgeGroup,omitempty"`
	Seating          *string `json:"seating,omitempty"`
	Occasion         *string `json:"occasion,omitempty"`
	SpecialRequest   *string `json:"specialRequest,omitempty"`

	ExperienceID    string  `json:"experienceId"`
	ExperienceName  string  `json:"experienceName"`
	ExperiencePrice float64 `json:"experiencePrice"`
	ExperienceTotal float64 `json:"experienceTotal"`
	AdultPrice      float64 `json:"adultPrice"`
	ChildPrice      float64 `json:"childPrice"`
	DiningTotal     float64 `json:"diningTotal"`
	TotalPrice      float64 `json:"totalPrice"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiningReservationListResponse ответ со списком бронирований столиков
type DiningReservationListResponse struct {
	Reservations []DiningReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	ages := r.ChildrenAges
	if ages == nil {
		ages = []int{}
	}

	return &ReservationResponse{
		ID:              r.ID,
		RoomType:        r.RoomType,
		RoomName:        r.RoomName,
		NightPrice:      r.NightPrice,
		CheckIn:         r.CheckIn.String(),
		CheckOut:        r.CheckOut.String(),
		Nights:          r.Nights,
		Guests:          r.Guests,
		Children:        r.Children,
		ChildrenAges:    ages,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		SpecialRequests: r.SpecialRequests,
		TotalPrice:      r.TotalPrice,
		CreatedAt:       r.CreatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if item := FromDomainReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}
	return resp
}

// FromDomainDiningReservation конвертирует domain модель в DTO
func FromDomainDiningReservation(r *domain.DiningReservation) *DiningReservationResponse {
	if r == nil {
		return nil
	}

	resp := &DiningReservationResponse{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		Date:            r.Date.String(),
		TimeCategory:    string(r.TimeCategory),
		Time:            r.Time.String(),
		Adults:          r.Adults,
		Children:        r.Children,
		Guests:          r.Guests,
		Seating:         r.Seating,
		Occasion:        r.Occasion,
		SpecialRequest:  r.SpecialRequest,
		ExperienceID:    r.ExperienceID,
		ExperienceName:  r.ExperienceName,
		ExperiencePrice: r.ExperiencePrice,
		ExperienceTotal: r.ExperienceTotal,
		AdultPrice:      r.AdultPrice,
		ChildPrice:      r.ChildPrice,
		DiningTotal:     r.DiningTotal,
		TotalPrice:      r.TotalPrice,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
	}

	if r.ChildrenAgeGroup != nil {
		group := string(*r.ChildrenAgeGroup)
		resp.ChildrenAgeGroup = &group
	}

	return resp
}

// FromDomainDiningReservationList конвертирует список domain моделей в DTO
func FromDomainDiningReservationList(reservations []*domain.DiningReservation) *DiningReservationListResponse {
	resp := &DiningReservationListResponse{
		Reservations: make([]DiningReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if item := FromDomainDiningReservation(r); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}
	return resp
}
