package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCanonicalEventType(t *testing.T) {
	tests := []struct {
		name      string
		venueName string
		eventType string
		want      string
	}{
		{"venue name wins over stated type", "Corporate Events Hall", "Wedding", EventTypeCorporate},
		{"stated type used when venue is neutral", "Grand Palace", "wedding reception", EventTypeWedding},
		{"case insensitive matching", "BIRTHDAY bash arena", "", EventTypeBirthday},
		{"conference keyword", "", "annual conference 2026", EventTypeConference},
		{"anniversary keyword", "", "25th Anniversary", EventTypeAnniversary},
		{"no match passes through", "Grand Palace", "Poetry Slam", "Poetry Slam"},
		{"both empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalEventType(tt.venueName, tt.eventType); got != tt.want {
				t.Errorf("CanonicalEventType(%q, %q) = %q, want %q", tt.venueName, tt.eventType, got, tt.want)
			}
		})
	}
}

func TestBuildRequestMissingIdentifiers(t *testing.T) {
	venueID := uuid.New()
	userID := uuid.New()
	nilEvent := uuid.Nil

	tests := []struct {
		name string
		id   Identity
	}{
		{"missing user", Identity{VenueID: venueID}},
		{"missing venue and event", Identity{UserID: userID}},
		{"nil event uuid does not count", Identity{UserID: userID, EventID: &nilEvent}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRequest(tt.id, DateRange{}, Breakdown{}, ContactInfo{}, Snapshot{})
			if !errors.Is(err, ErrMissingIdentifier) {
				t.Fatalf("expected ErrMissingIdentifier, got %v", err)
			}
		})
	}
}

func TestBuildRequestCopiesBreakdownVerbatim(t *testing.T) {
	dr := DateRange{
		Start: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Days:  3,
	}
	bd := ComputeBreakdown(QuoteInput{UnitPrice: 1000, Days: 3, Guests: 4, Mode: PricePerPerson})

	req, err := BuildRequest(
		Identity{UserID: uuid.New(), VenueID: uuid.New()},
		dr, bd,
		ContactInfo{Name: "Priya", Email: "priya@example.com", Phone: "9876543210"},
		Snapshot{VenueName: "Rosewood Banquets", Location: "Jaipur", EventType: "wedding"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if req.BasePrice != bd.Subtotal || req.ServiceFee != bd.ServiceFee ||
		req.GSTAmount != bd.GSTAmount || req.TotalAmount != bd.Total {
		t.Fatal("monetary fields must equal the breakdown's, never recomputed")
	}
	if req.NumberOfDays != 3 || !req.EventDate.Equal(dr.Start) || !req.EndDate.Equal(dr.End) {
		t.Fatal("date fields do not match the reconciled range")
	}
	if req.EventType != EventTypeWedding {
		t.Fatalf("expected canonical event type %q, got %q", EventTypeWedding, req.EventType)
	}
	if req.GuestCount != bd.Guests {
		t.Fatalf("guest count %d does not match breakdown %d", req.GuestCount, bd.Guests)
	}
}

func TestBuildRequestEventOnlyIdentity(t *testing.T) {
	eventID := uuid.New()
	req, err := BuildRequest(
		Identity{UserID: uuid.New(), EventID: &eventID},
		DateRange{}, Breakdown{}, ContactInfo{}, Snapshot{},
	)
	if err != nil {
		t.Fatalf("event-only identity should be accepted: %v", err)
	}
	if req.EventID == nil || *req.EventID != eventID {
		t.Fatal("event id not carried onto the request")
	}
}
