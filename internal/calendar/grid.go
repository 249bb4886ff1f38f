package calendar

import (
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

// Day is a single cell of the month grid
type Day struct {
	Date types.DateString
	Day  int
	DayState
}

// Month is one month of the two-month picker
type Month struct {
	Key           types.MonthString
	Title         string
	LeadingBlanks int // пустые ячейки перед 1-м числом, неделя начинается с воскресенья
	Days          []Day
}

// View is the two-month calendar with navigation keys
type View struct {
	Months    []Month
	PrevMonth types.MonthString
	NextMonth types.MonthString
	Selection domain.Selection
	Today     types.DateString
}

// BuildMonth lays out a month and classifies each of its days
func BuildMonth(engine *Engine, month types.MonthString, today types.DateString, selection domain.Selection) Month {
	year, monthOfYear := month.Year(), month.MonthOfYear()
	daysCount := types.DaysInMonth(year, monthOfYear)

	days := make([]Day, 0, daysCount)
	date := month.FirstDay()
	for i := 1; i <= daysCount; i++ {
		days = append(days, Day{
			Date:     date,
			Day:      i,
			DayState: engine.ClassifyDay(date, today, selection),
		})
		date = date.AddDays(1)
	}

	return Month{
		Key:           month,
		Title:         month.Title(),
		LeadingBlanks: types.WeekdayOffset(year, monthOfYear),
		Days:          days,
	}
}

// BuildView builds the anchor month and the month after it
func BuildView(engine *Engine, anchor types.MonthString, today types.DateString, selection domain.Selection) View {
	return View{
		Months: []Month{
			BuildMonth(engine, anchor, today, selection),
			BuildMonth(engine, anchor.Next(), today, selection),
		},
		PrevMonth: anchor.Prev(),
		NextMonth: anchor.Next(),
		Selection: selection,
		Today:     today,
	}
}

// ResolveAnchor picks the first month to display: the explicit month,
// then the check-in month, then the current month.
func ResolveAnchor(month types.MonthString, selection domain.Selection, today types.DateString) types.MonthString {
	switch {
	case month != "":
		return month
	case !selection.CheckIn.IsZero():
		return selection.CheckIn.Month()
	default:
		return today.Month()
	}
}
