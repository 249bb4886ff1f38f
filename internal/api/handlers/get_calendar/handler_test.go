package get_calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	getCalendar "github.com/m04kA/hotel-booking-service/internal/usecase/get_calendar"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getCalendar.Response)
	return resp, args.Error(1)
}

func TestHandle_PassesQueryToUseCase(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getCalendar.Request{
		Month:     "2025-12",
		Selection: domain.Selection{CheckIn: "2025-12-03"},
	}).Return(&getCalendar.Response{
		Months: []getCalendar.Month{{
			Key:           "2025-12",
			Title:         "December 2025",
			LeadingBlanks: 1,
			Days:          []getCalendar.Day{{Date: "2025-12-01", Day: 1}},
		}},
		PrevMonth: "2025-11",
		NextMonth: "2026-01",
		CheckIn:   "2025-12-03",
		Today:     "2025-11-20",
	}, nil)

	h := NewHandler(uc, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?month=2025-12&checkIn=2025-12-03", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"months":[{"key":"2025-12","title":"December 2025","leadingBlanks":1,
			"days":[{"date":"2025-12-01","day":1,"disabled":false,"muted":false,"selected":false,"isToday":false}]}],
		"prevMonth":"2025-11","nextMonth":"2026-01",
		"checkIn":"2025-12-03","checkOut":null,"nights":0,"today":"2025-11-20"
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		ucErr      error
		wantStatus int
	}{
		{name: "malformed month", query: "month=2025-13", wantStatus: http.StatusBadRequest},
		{name: "malformed date", query: "checkIn=tomorrow", wantStatus: http.StatusBadRequest},
		{name: "invalid selection", query: "checkOut=2025-12-03", ucErr: getCalendar.ErrInvalidSelection, wantStatus: http.StatusBadRequest},
		{name: "internal", query: "", ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			h := NewHandler(uc, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
