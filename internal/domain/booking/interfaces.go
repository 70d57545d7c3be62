package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VenueSnapshot is the slice of a venue record the booking flow needs
type VenueSnapshot struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	City    string
	Image   string

	// Price is the raw value as stored: a number or a currency-formatted
	// string, parsed leniently by the calculator
	Price       string
	ServiceFee  *float64
	GSTPercent  *float64
	PricingMode string

	Inclusions []string
	Exclusions []string
	Policy     CancellationPolicy
}

// EventSnapshot is the slice of an event record the booking flow needs
type EventSnapshot struct {
	ID        uuid.UUID
	VenueID   uuid.UUID
	Name      string
	EventType string

	// Price overrides the venue price when non-empty
	Price       string
	PricingMode string
}

// VenueProvider supplies venue snapshots for booking assembly
type VenueProvider interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
}

// EventProvider supplies event snapshots for booking assembly
type EventProvider interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
}

// Notifier delivers booking lifecycle notifications. Implementations must not
// block the booking flow; failures are logged and ignored.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, ownerID, bookingID, venueID uuid.UUID, eventDate time.Time) error
	NotifyBookingCancelled(ctx context.Context, ownerID, bookingID, venueID uuid.UUID, reason string) error
	NotifyBookingStatusChanged(ctx context.Context, customerID, bookingID uuid.UUID, status Status) error
}
