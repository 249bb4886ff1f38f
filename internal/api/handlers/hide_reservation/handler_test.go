package hide_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/service/reservations"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Hide(ctx context.Context, id int64, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

func serve(svc *mockService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/reservations/{id}/hide", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		svcErr     error
		callSvc    bool
		wantStatus int
	}{
		{name: "hidden", path: "/reservations/5/hide", callSvc: true, wantStatus: http.StatusNoContent},
		{name: "not owner", path: "/reservations/5/hide", callSvc: true, svcErr: reservations.ErrReservationNotFound, wantStatus: http.StatusNotFound},
		{name: "bad id", path: "/reservations/abc/hide", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/reservations/0/hide", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.callSvc {
				svc.On("Hide", mock.Anything, int64(5), "user-1").Return(tt.svcErr)
			}

			rec := serve(svc, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
