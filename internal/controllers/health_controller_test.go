package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aquad/internal/models"
	"aquad/internal/services"
	"aquad/internal/testutil"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	clock := testutil.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	service := services.NewHydrationService(clock)
	service.Dispatch(models.AddWater{Amount: 100})
	hc := NewHealthController(service)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Health(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, uint64(1), resp.Generation)
	assert.Equal(t, 0, resp.StreakDays)
	assert.GreaterOrEqual(t, resp.UptimeSeconds, 0.0)
}

func TestHealth_RejectsNonGet(t *testing.T) {
	clock := testutil.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	hc := NewHealthController(services.NewHydrationService(clock))

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rec := httptest.NewRecorder()
	hc.Health(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h0m0s", formatDuration(0))
	assert.Equal(t, "0h1m30s", formatDuration(90*time.Second))
	assert.Equal(t, "25h0m1s", formatDuration(25*time.Hour+time.Second))
}
