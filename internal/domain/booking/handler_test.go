package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
)

func TestHandlerQuote_Returns200WithBreakdown(t *testing.T) {
	_, _, _, _, svc, venue := testFixtures()
	h := NewHandler(svc)

	body := `{"venue_id":"` + venue.ID.String() + `","start_date":"2026-09-10","end_date":"2026-09-12","guest_count":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/quote", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())

	rr := httptest.NewRecorder()
	h.Quote(rr, req.WithContext(ctx))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", rr.Code, rr.Body.String())
	}

	var payload struct {
		Success bool          `json:"success"`
		Data    QuoteResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success {
		t.Fatal("expected success envelope")
	}
	if payload.Data.Range.Days != 3 {
		t.Fatalf("expected 3 days, got %d", payload.Data.Range.Days)
	}
	if payload.Data.Breakdown.Subtotal != 30000 {
		t.Fatalf("expected subtotal 30000, got %v", payload.Data.Breakdown.Subtotal)
	}
}

func TestHandlerCreate_MapsMissingIdentifierTo400(t *testing.T) {
	_, _, _, _, svc, _ := testFixtures()
	h := NewHandler(svc)

	// neither venue_id nor event_id
	body := `{"start_date":"2026-09-10","end_date":"2026-09-12","contact_name":"Priya Sharma","contact_email":"priya@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())

	rr := httptest.NewRecorder()
	h.Create(rr, req.WithContext(ctx))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d, body=%s", rr.Code, rr.Body.String())
	}
}

func TestHandlerQuote_RejectsInvalidJSON(t *testing.T) {
	_, _, _, _, svc, _ := testFixtures()
	h := NewHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/quote", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Quote(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
}
