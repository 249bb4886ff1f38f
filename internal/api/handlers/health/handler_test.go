package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/hotel-booking-service/pkg/logger"
)

func TestReady(t *testing.T) {
	ok := PingerFunc(func(context.Context) error { return nil })
	down := PingerFunc(func(context.Context) error { return errors.New("connection refused") })

	t.Run("all up", func(t *testing.T) {
		h := NewHandler(map[string]Pinger{"postgres": ok, "redis": ok}, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok","checks":{"postgres":"ok","redis":"ok"}}`, rec.Body.String())
	})

	t.Run("redis down", func(t *testing.T) {
		h := NewHandler(map[string]Pinger{"postgres": ok, "redis": down}, logger.NewNop())
		rec := httptest.NewRecorder()

		h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable","checks":{"postgres":"ok","redis":"unavailable"}}`, rec.Body.String())
	})
}

func TestLive(t *testing.T) {
	h := NewHandler(nil, logger.NewNop())
	rec := httptest.NewRecorder()

	h.Live(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
