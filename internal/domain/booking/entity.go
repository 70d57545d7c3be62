package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Status represents booking status (matches booking_status enum)
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Booking represents a confirmed or pending reservation (matches bookings table)
type Booking struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Identity
	UserID  uuid.UUID     `db:"user_id"`
	VenueID uuid.UUID     `db:"venue_id"`
	EventID uuid.NullUUID `db:"event_id"` // null for pure venue bookings

	// Denormalized venue snapshot
	VenueName  string         `db:"venue_name"`
	VenueImage sql.NullString `db:"venue_image"`
	Location   sql.NullString `db:"location"`
	EventType  string         `db:"event_type"`

	// Temporal
	EventDate    time.Time `db:"event_date"`
	EndDate      time.Time `db:"end_date"`
	NumberOfDays int       `db:"number_of_days"`

	// Contact
	GuestCount      int            `db:"guest_count"`
	ContactName     string         `db:"contact_name"`
	ContactEmail    string         `db:"contact_email"`
	ContactPhone    sql.NullString `db:"contact_phone"`
	SpecialRequests sql.NullString `db:"special_requests"`

	// Price breakdown (copied from the computed breakdown, never recomputed)
	PricingMode string  `db:"pricing_mode"`
	UnitPrice   float64 `db:"unit_price"`
	BasePrice   float64 `db:"base_price"`
	ServiceFee  float64 `db:"service_fee"`
	GSTPercent  float64 `db:"gst_percent"`
	GSTAmount   float64 `db:"gst_amount"`
	TotalAmount float64 `db:"total_amount"`

	// Policy snapshot
	Inclusions           pq.StringArray `db:"inclusions"`
	Exclusions           pq.StringArray `db:"exclusions"`
	FullRefundDays       int            `db:"full_refund_days"`
	PartialRefundDays    int            `db:"partial_refund_days"`
	PartialRefundPercent float64        `db:"partial_refund_percent"`

	// Lifecycle
	Status       Status          `db:"status"`
	CancelReason sql.NullString  `db:"cancel_reason"`
	RefundAmount sql.NullFloat64 `db:"refund_amount"`

	// Joined data (not in DB, populated by queries)
	CustomerName string `db:"-"`
}

// Policy reconstructs the cancellation policy snapshot stored on the booking
func (b *Booking) Policy() CancellationPolicy {
	return CancellationPolicy{
		FullRefundDays:       b.FullRefundDays,
		PartialRefundDays:    b.PartialRefundDays,
		PartialRefundPercent: b.PartialRefundPercent,
	}
}

// IsCancellable returns true while the booking has not finished or been
// cancelled already
func (b *Booking) IsCancellable() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BelongsTo checks booking ownership
func (b *Booking) BelongsTo(userID uuid.UUID) bool {
	return b.UserID == userID
}
