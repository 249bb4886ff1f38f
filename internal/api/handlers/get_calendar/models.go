package get_calendar

import (
	"net/url"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	getCalendar "github.com/m04kA/hotel-booking-service/internal/usecase/get_calendar"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Months    []MonthResponse `json:"months"`
	PrevMonth string          `json:"prevMonth"`
	NextMonth string          `json:"nextMonth"`
	CheckIn   *string         `json:"checkIn"`
	CheckOut  *string         `json:"checkOut"`
	Nights    int             `json:"nights"`
	Today     string          `json:"today"`
}

type MonthResponse struct {
	Key           string        `json:"key"`   // "2025-12"
	Title         string        `json:"title"` // "December 2025"
	LeadingBlanks int           `json:"leadingBlanks"`
	Days          []DayResponse `json:"days"`
}

type DayResponse struct {
	Date     string `json:"date"`
	Day      int    `json:"day"`
	Disabled bool   `json:"disabled"`
	Muted    bool   `json:"muted"`
	Selected bool   `json:"selected"`
	IsToday  bool   `json:"isToday"`
}

// parseQuery разбирает month, checkIn и checkOut из строки запроса
func parseQuery(q url.Values) (*getCalendar.Request, error) {
	req := &getCalendar.Request{}

	if raw := q.Get("month"); raw != "" {
		month, err := types.NewMonthStringFromString(raw)
		if err != nil {
			return nil, err
		}
		req.Month = month
	}

	checkIn, err := optionalDate(q.Get("checkIn"))
	if err != nil {
		return nil, err
	}
	checkOut, err := optionalDate(q.Get("checkOut"))
	if err != nil {
		return nil, err
	}
	req.Selection = domain.Selection{CheckIn: checkIn, CheckOut: checkOut}

	return req, nil
}

func optionalDate(raw string) (types.DateString, error) {
	if raw == "" {
		return "", nil
	}
	return types.NewDateStringFromString(raw)
}

func dateOrNil(d types.DateString) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) CalendarResponse {
	months := make([]MonthResponse, 0, len(resp.Months))
	for _, m := range resp.Months {
		days := make([]DayResponse, 0, len(m.Days))
		for _, d := range m.Days {
			days = append(days, DayResponse{
				Date:     d.Date.String(),
				Day:      d.Day,
				Disabled: d.Disabled,
				Muted:    d.Muted,
				Selected: d.Selected,
				IsToday:  d.IsToday,
			})
		}
		months = append(months, MonthResponse{
			Key:           m.Key.String(),
			Title:         m.Title,
			LeadingBlanks: m.LeadingBlanks,
			Days:          days,
		})
	}

	return CalendarResponse{
		Months:    months,
		PrevMonth: resp.PrevMonth.String(),
		NextMonth: resp.NextMonth.String(),
		CheckIn:   dateOrNil(resp.CheckIn),
		CheckOut:  dateOrNil(resp.CheckOut),
		Nights:    resp.Nights,
		Today:     resp.Today.String(),
	}
}
