package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canonical event type labels
const (
	EventTypeWedding     = "Wedding"
	EventTypeCorporate   = "Corporate Event"
	EventTypeBirthday    = "Birthday Party"
	EventTypeConference  = "Conference"
	EventTypeAnniversary = "Anniversary"
)

// eventTypeKeywords is the canonicalization table; checked in order, first
// substring hit wins
var eventTypeKeywords = []struct {
	keyword string
	label   string
}{
	{"wedding", EventTypeWedding},
	{"corporate", EventTypeCorporate},
	{"birthday", EventTypeBirthday},
	{"conference", EventTypeConference},
	{"anniversary", EventTypeAnniversary},
}

// CanonicalEventType classifies a free-text event type and/or venue name into
// a canonical label via case-insensitive substring matching. The venue-name
// signal wins over the stated event type when both match; input matching
// nothing passes through unchanged.
func CanonicalEventType(venueName, eventType string) string {
	if label, ok := matchEventType(venueName); ok {
		return label
	}
	if label, ok := matchEventType(eventType); ok {
		return label
	}
	return eventType
}

func matchEventType(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	lower := strings.ToLower(s)
	for _, kw := range eventTypeKeywords {
		if strings.Contains(lower, kw.keyword) {
			return kw.label, true
		}
	}
	return "", false
}

// Identity names who is booking what. EventID is nil for pure venue bookings.
type Identity struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
	EventID *uuid.UUID
}

// ContactInfo is the user-supplied contact block
type ContactInfo struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

// Snapshot is the venue/event state copied onto the booking at build time
type Snapshot struct {
	VenueName  string
	VenueImage string
	Location   string
	EventType  string
	Inclusions []string
	Exclusions []string
	Policy     CancellationPolicy
}

// Request is the normalized booking record handed to persistence. Immutable
// once built; all monetary fields equal the breakdown's, never recomputed.
type Request struct {
	UserID  uuid.UUID
	VenueID uuid.UUID
	EventID *uuid.UUID

	VenueName  string
	VenueImage string
	Location   string
	EventType  string

	EventDate    time.Time
	EndDate      time.Time
	NumberOfDays int

	GuestCount      int
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	SpecialRequests string

	PricingMode PricingMode
	UnitPrice   float64
	BasePrice   float64 // subtotal
	ServiceFee  float64
	GSTPercent  float64
	GSTAmount   float64
	TotalAmount float64

	Inclusions []string
	Exclusions []string
	Policy     CancellationPolicy
}

// BuildRequest assembles the final booking payload. Pure: no persistence, no
// network. Missing user or venue identifiers fail fast with
// ErrMissingIdentifier before anything else happens.
func BuildRequest(id Identity, dr DateRange, bd Breakdown, contact ContactInfo, snap Snapshot) (*Request, error) {
	if id.UserID == uuid.Nil {
		return nil, ErrMissingIdentifier
	}
	if id.VenueID == uuid.Nil && (id.EventID == nil || *id.EventID == uuid.Nil) {
		return nil, ErrMissingIdentifier
	}

	return &Request{
		UserID:  id.UserID,
		VenueID: id.VenueID,
		EventID: id.EventID,

		VenueName:  snap.VenueName,
		VenueImage: snap.VenueImage,
		Location:   snap.Location,
		EventType:  CanonicalEventType(snap.VenueName, snap.EventType),

		EventDate:    dr.Start,
		EndDate:      dr.End,
		NumberOfDays: dr.Days,

		GuestCount:      bd.Guests,
		ContactName:     contact.Name,
		ContactEmail:    contact.Email,
		ContactPhone:    contact.Phone,
		SpecialRequests: contact.SpecialRequests,

		PricingMode: bd.Mode,
		UnitPrice:   bd.UnitPrice,
		BasePrice:   bd.Subtotal,
		ServiceFee:  bd.ServiceFee,
		GSTPercent:  bd.GSTPercent,
		GSTAmount:   bd.GSTAmount,
		TotalAmount: bd.Total,

		Inclusions: snap.Inclusions,
		Exclusions: snap.Exclusions,
		Policy:     snap.Policy,
	}, nil
}
