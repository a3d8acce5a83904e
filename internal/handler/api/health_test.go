//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"hotel-backend/internal/handler/api"
	"hotel-backend/internal/pkg/clock"
	"hotel-backend/tests/common/httptest"
)

func TestHealthHandler_Check(t *testing.T) {
	router := newTestRouter(t)
	fixed := time.Date(2024, 3, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	router.GET("/health", api.NewHealthHandler(clock.NewFixedClock(fixed)).Check)

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

	var body map[string]string
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
	if body["time"] != "2024-03-01T11:30:00Z" {
		t.Errorf("time = %q, want 2024-03-01T11:30:00Z", body["time"])
	}
}
