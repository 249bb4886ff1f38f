package list_dining_experiences

import (
	"net/http"

	"github.com/m04kA/hotel-booking-service/internal/api/handlers"
	"github.com/m04kA/hotel-booking-service/internal/domain"
)

// ExperienceResponse HTTP response model
type ExperienceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Subtitle    string  `json:"subtitle"`
	Price       float64 `json:"price"` // за человека
	Recommended bool    `json:"recommended"`
}

// PriceListResponse цены меню ресторана
type PriceListResponse struct {
	Adult           float64 `json:"adult"`
	ChildOver15     float64 `json:"childOver15"`
	ChildUnder15    float64 `json:"childUnder15"`
	BreakfastWindow string  `json:"breakfastWindow"`
	LunchWindow     string  `json:"lunchWindow"`
	DinnerWindow    string  `json:"dinnerWindow"`
}

type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
	Prices      PriceListResponse    `json:"prices"`
	Currency    string               `json:"currency"`
}

type Handler struct {
	experiences []domain.DiningExperience
}

func NewHandler(experiences []domain.DiningExperience) *Handler {
	return &Handler{experiences: experiences}
}

// Handle GET /api/v1/dining/experiences
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	resp := ExperienceListResponse{
		Experiences: make([]ExperienceResponse, 0, len(h.experiences)),
		Prices: PriceListResponse{
			Adult:           domain.DiningAdultPrice,
			ChildOver15:     domain.DiningChildOver15Price,
			ChildUnder15:    domain.DiningChildUnder15Price,
			BreakfastWindow: formatWindow(domain.MealBreakfast),
			LunchWindow:     formatWindow(domain.MealLunch),
			DinnerWindow:    formatWindow(domain.MealDinner),
		},
		Currency: domain.Currency,
	}
	for _, e := range h.experiences {
		resp.Experiences = append(resp.Experiences, ExperienceResponse{
			ID:          e.ID,
			Name:        e.Name,
			Subtitle:    e.Subtitle,
			Price:       e.Price,
			Recommended: e.Recommended,
		})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func formatWindow(category domain.MealCategory) string {
	w := domain.MealWindows[category]
	return w.From.String() + "-" + w.To.String()
}
