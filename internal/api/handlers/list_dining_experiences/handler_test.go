package list_dining_experiences

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
)

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(domain.DiningExperiences).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dining/experiences", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body ExperienceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Experiences, 3)
	assert.Equal(t, "verdant-dining", body.Experiences[0].ID)
	assert.True(t, body.Experiences[0].Recommended)
	assert.Equal(t, PriceListResponse{
		Adult:           45,
		ChildOver15:     10,
		ChildUnder15:    0,
		BreakfastWindow: "07:00-10:30",
		LunchWindow:     "12:00-15:00",
		DinnerWindow:    "18:00-22:00",
	}, body.Prices)
	assert.Equal(t, "USD", body.Currency)
}
