package select_date

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
	"github.com/m04kA/hotel-booking-service/pkg/types"
)

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncCalendarClick(outcome string) { m.Called(outcome) }

func newTestUseCase(t *testing.T) (*UseCase, *mockMetrics) {
	t.Helper()
	source, err := calendar.NewStaticSource(domain.DefaultBookedRanges)
	require.NoError(t, err)

	metrics := &mockMetrics{}
	uc := NewUseCase(calendar.NewMachine(calendar.NewEngine(source)), time.UTC, metrics, logger.NewNop())
	uc.timeProvider = fixedTimeProvider{now: time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)}
	return uc, metrics
}

func TestExecute_Transitions(t *testing.T) {
	tests := []struct {
		name      string
		selection domain.Selection
		date      types.DateString
		outcome   calendar.Outcome
		checkIn   types.DateString
		checkOut  types.DateString
		query     string
		nights    int
	}{
		{"first click sets check-in", domain.Selection{}, "2025-12-03", calendar.OutcomeCheckInSet, "2025-12-03", "", "checkIn=2025-12-03", 0},
		{"earlier click moves check-in", domain.Selection{CheckIn: "2025-12-05"}, "2025-12-02", calendar.OutcomeCheckInMoved, "2025-12-02", "", "checkIn=2025-12-02", 0},
		{"free range completes", domain.Selection{CheckIn: "2025-12-03"}, "2025-12-06", calendar.OutcomeCompleted, "2025-12-03", "2025-12-06", "checkIn=2025-12-03&checkOut=2025-12-06", 3},
		{"complete restarts", domain.Selection{CheckIn: "2025-12-03", CheckOut: "2025-12-06"}, "2025-12-14", calendar.OutcomeCheckInSet, "2025-12-14", "", "checkIn=2025-12-14", 0},
		{"booked day ignored", domain.Selection{CheckIn: "2025-12-03"}, "2025-12-11", calendar.OutcomeIgnored, "2025-12-03", "", "checkIn=2025-12-03", 0},
		{"past day ignored", domain.Selection{}, "2025-11-19", calendar.OutcomeIgnored, "", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, metrics := newTestUseCase(t)
			metrics.On("IncCalendarClick", string(tt.outcome)).Once()

			resp, err := uc.Execute(context.Background(), &Request{Selection: tt.selection, Date: tt.date})

			require.NoError(t, err)
			assert.Equal(t, tt.outcome, resp.Outcome)
			assert.Equal(t, tt.checkIn, resp.CheckIn)
			assert.Equal(t, tt.checkOut, resp.CheckOut)
			assert.Equal(t, tt.query, resp.Query)
			assert.Equal(t, tt.nights, resp.Nights)
			assert.False(t, resp.Rejected())
			metrics.AssertExpectations(t)
		})
	}
}

func TestExecute_RangeOverBookedNightsRejected(t *testing.T) {
	uc, metrics := newTestUseCase(t)
	metrics.On("IncCalendarClick", "rejected").Once()

	resp, err := uc.Execute(context.Background(), &Request{
		Selection: domain.Selection{CheckIn: "2025-12-08"},
		Date:      "2025-12-15",
	})

	require.NoError(t, err)
	assert.True(t, resp.Rejected())
	assert.Equal(t, domain.RangeNotAvailableMessage, resp.Reason)
	assert.Equal(t, types.DateString("2025-12-08"), resp.CheckIn)
	assert.True(t, resp.CheckOut.IsZero())
	assert.Equal(t, "checkIn=2025-12-08", resp.Query)
}

func TestExecute_ZeroNightRejected(t *testing.T) {
	uc, metrics := newTestUseCase(t)
	metrics.On("IncCalendarClick", "rejected").Once()

	resp, err := uc.Execute(context.Background(), &Request{
		Selection: domain.Selection{CheckIn: "2025-12-08"},
		Date:      "2025-12-08",
	})

	require.NoError(t, err)
	assert.True(t, resp.Rejected())
	assert.Equal(t, domain.ZeroNightStayMessage, resp.Reason)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc, metrics := newTestUseCase(t)

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Selection: domain.Selection{CheckIn: "2025-12-08", CheckOut: "2025-12-01"},
		Date:      "2025-12-03",
	})
	assert.ErrorIs(t, err, ErrInvalidSelection)

	metrics.AssertNotCalled(t, "IncCalendarClick", mock.Anything)
}
