package create_dining_reservation

import (
	"time"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	createDining "github.com/m04kA/hotel-booking-service/internal/usecase/create_dining_reservation"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// CreateDiningReservationRequest HTTP request model
type CreateDiningReservationRequest struct {
	Date             string  `json:"date" validate:"required"`                                     // "2025-12-03"
	TimeCategory     string  `json:"timeCategory" validate:"required,oneof=breakfast lunch dinner"` // прием пищи
	Time             string  `json:"time" validate:"required"`                                     // "19:30"
	Adults           int     `json:"adults" validate:"gte=1,lte=12"`
	Children         int     `json:"children" validate:"gte=0,lte=12"`
	ChildrenAgeGroup *string `json:"childrenAgeGroup,omitempty" validate:"omitempty,oneof=under15 over15"`
	Seating          *string `json:"seating,omitempty" validate:"omitempty,max=50"`
	Occasion         *string `json:"occasion,omitempty" validate:"omitempty,max=50"`
	SpecialRequest   *string `json:"specialRequest,omitempty" validate:"omitempty,max=500"`
	ExperienceID     string  `json:"experienceId" validate:"required"`
}

// DiningReservationResponse HTTP response model
type DiningReservationResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Status           string  `json:"status"`
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
	ExperienceID     string  `json:"experienceId"`
	ExperienceName   string  `json:"experienceName"`
	ExperiencePrice  float64 `json:"experiencePrice"`
	ExperienceTotal  float64 `json:"experienceTotal"`
	AdultPrice       float64 `json:"adultPrice"`
	ChildPrice       float64 `json:"childPrice"`
	DiningTotal      float64 `json:"diningTotal"`
	TotalPrice       float64 `json:"totalPrice"`
	CreatedAt        string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateDiningReservationRequest) ToUseCaseRequest(userID string) (*createDining.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}
	tm, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	var ageGroup *domain.ChildrenAgeGroup
	if r.ChildrenAgeGroup != nil {
		g := domain.ChildrenAgeGroup(*r.ChildrenAgeGroup)
		ageGroup = &g
	}

	return &createDining.Request{
		UserID:           userID,
		Date:             date,
		TimeCategory:     domain.MealCategory(r.TimeCategory),
		Time:             tm,
		Adults:           r.Adults,
		Children:         r.Children,
		ChildrenAgeGroup: ageGroup,
		Seating:          r.Seating,
		Occasion:         r.Occasion,
		SpecialRequest:   r.SpecialRequest,
		ExperienceID:     r.ExperienceID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createDining.Response) DiningReservationResponse {
	var ageGroup *string
	if resp.ChildrenAgeGroup != nil {
		g := string(*resp.ChildrenAgeGroup)
		ageGroup = &g
	}

	return DiningReservationResponse{
		ID:               resp.ID,
		Name:             resp.Name,
		Email:            resp.Email,
		Status:           string(resp.Status),
		Date:             resp.Date.String(),
		TimeCategory:     string(resp.TimeCategory),
		Time:             resp.Time.String(),
		Adults:           resp.Adults,
		Children:         resp.Children,
		Guests:           resp.Guests,
		ChildrenAgeGroup: ageGroup,
		Seating:          resp.Seating,
		Occasion:         resp.Occasion,
		SpecialRequest:   resp.SpecialRequest,
		ExperienceID:     resp.ExperienceID,
		ExperienceName:   resp.ExperienceName,
		ExperiencePrice:  resp.Quote.ExperiencePrice,
		ExperienceTotal:  resp.Quote.ExperienceTotal,
		AdultPrice:       resp.Quote.AdultPrice,
		ChildPrice:       resp.Quote.ChildPrice,
		DiningTotal:      resp.Quote.DiningTotal,
		TotalPrice:       resp.Quote.TotalPrice,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
	}
}
