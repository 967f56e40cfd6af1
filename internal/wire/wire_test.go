package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"theater-booking/internal/adaptor"

	"go.uber.org/zap"
)

// Preflight requests never reach the handlers, so nil services are fine
// here.
func TestRouterAnswersPreflight(t *testing.T) {
	handler := &adaptor.Handler{Booking: adaptor.NewBookingHandler(nil, zap.NewNop())}
	router := setupRouter(handler, zap.NewNop())

	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "https://frontend.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("preflight status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got != http.MethodPost {
		t.Errorf("Allow-Methods = %q, want %q", got, http.MethodPost)
	}
}

func TestRouterSetsOriginOnSimpleRequests(t *testing.T) {
	handler := &adaptor.Handler{Booking: adaptor.NewBookingHandler(nil, zap.NewNop())}
	router := setupRouter(handler, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://frontend.test")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
}
