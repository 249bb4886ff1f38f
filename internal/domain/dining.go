package domain

import (
	"time"

	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// DiningStatus represents the status of a dining reservation
type DiningStatus string

const (
	DiningStatusPending   DiningStatus = "pending"
	DiningStatusConfirmed DiningStatus = "confirmed"
	DiningStatusCancelled DiningStatus = "cancelled"
)

// MealCategory is the part of the day a table is reserved for
type MealCategory string

const (
	MealBreakfast MealCategory = "breakfast"
	MealLunch     MealCategory = "lunch"
	MealDinner    MealCategory = "dinner"
)

// ChildrenAgeGroup determines the child dining price
type ChildrenAgeGroup string

const (
	ChildrenUnder15 ChildrenAgeGroup = "under15"
	ChildrenOver15  ChildrenAgeGroup = "over15"
)

// MealWindow is the interval of seating times accepted for a meal category
type MealWindow struct {
	From types.TimeString
	To   types.TimeString
}

// Contains reports whether t is inside the window, bounds included
func (w MealWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.From) && !t.IsAfter(w.To)
}

// MealWindows lists the seating windows of the restaurant
var MealWindows = map[MealCategory]MealWindow{
	MealBreakfast: {From: "07:00", To: "10:30"},
	MealLunch:     {From: "12:00", To: "15:00"},
	MealDinner:    {From: "18:00", To: "22:00"},
}

// IsValid returns true for a known meal category
func (c MealCategory) IsValid() bool {
	_, ok := MealWindows[c]
	return ok
}

// IsValid returns true for a known age group
func (g ChildrenAgeGroup) IsValid() bool {
	return g == ChildrenUnder15 || g == ChildrenOver15
}

// ChildPrice returns the per-child dining price for the age group
func (g ChildrenAgeGroup) ChildPrice() float64 {
	if g == ChildrenOver15 {
		return DiningChildOver15Price
	}
	return DiningChildUnder15Price
}

// DiningReservation represents a table reservation with a dining experience
type DiningReservation struct {
	ID     int64
	UserID string
	Name   string
	Email  string

	Date         types.DateString
	TimeCategory MealCategory
	Time         types.TimeString

	Adults           int
	Children         int
	Guests           int
	ChildrenAgeGroup *ChildrenAgeGroup

	Seating        *string
	Occasion       *string
	SpecialRequest *string

	// Denormalized experience data
	ExperienceID    string
	ExperienceName  string
	ExperiencePrice float64
	ExperienceTotal float64

	AdultPrice  float64
	ChildPrice  float64
	DiningTotal float64
	TotalPrice  float64

	Status DiningStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DiningQuote is the price breakdown of a dining reservation
type DiningQuote struct {
	ExperiencePrice float64
	ExperienceTotal float64
	AdultPrice      float64
	ChildPrice      float64
	DiningTotal     float64
	TotalPrice      float64
}

// QuoteDining computes the price breakdown for a party.
// The experience is charged per person, the dining menu per adult and per child by age group.
func QuoteDining(experience DiningExperience, adults, children int, ageGroup ChildrenAgeGroup) DiningQuote {
	childPrice := 0.0
	if children > 0 {
		childPrice = ageGroup.ChildPrice()
	}

	experienceTotal := experience.Price * float64(adults+children)
	diningTotal := float64(adults)*DiningAdultPrice + float64(children)*childPrice

	return DiningQuote{
		ExperiencePrice: experience.Price,
		ExperienceTotal: experienceTotal,
		AdultPrice:      DiningAdultPrice,
		ChildPrice:      childPrice,
		DiningTotal:     diningTotal,
		TotalPrice:      experienceTotal + diningTotal,
	}
}
