package notification

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type represents notification type
type Type string

const (
	TypeBookingCreated   Type = "booking_created"   // Organizer: new booking at their venue
	TypeBookingConfirmed Type = "booking_confirmed" // Customer: organizer confirmed
	TypeBookingRejected  Type = "booking_rejected"  // Customer: organizer rejected
	TypeBookingCompleted Type = "booking_completed" // Customer: stay finished
	TypeBookingCancelled Type = "booking_cancelled" // Organizer: customer cancelled
)

// Notification represents a user notification
type Notification struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"user_id"`
	Type      Type            `db:"type" json:"type"`
	Title     string          `db:"title" json:"title"`
	Body      sql.NullString  `db:"body" json:"body,omitempty"`
	Data      json.RawMessage `db:"data" json:"data,omitempty"`
	IsRead    bool            `db:"is_read" json:"is_read"`
	ReadAt    sql.NullTime    `db:"read_at" json:"read_at,omitempty"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// NotificationData for linking to entities
type NotificationData struct {
	BookingID *uuid.UUID `json:"booking_id,omitempty"`
	VenueID   *uuid.UUID `json:"venue_id,omitempty"`
	EventDate string     `json:"event_date,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

// SetData encodes data to JSON
func (n *Notification) SetData(data *NotificationData) {
	if data != nil {
		n.Data, _ = json.Marshal(data)
	}
}

// GetData decodes data from JSON
func (n *Notification) GetData() *NotificationData {
	if n.Data == nil {
		return &NotificationData{}
	}
	var data NotificationData
	_ = json.Unmarshal(n.Data, &data)
	return &data
}
