package event

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Event represents an organizer-published event at a venue (matches events table)
type Event struct {
	ID          uuid.UUID `db:"id"`
	OrganizerID uuid.UUID `db:"organizer_id"`
	VenueID     uuid.UUID `db:"venue_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`

	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	EventType   string         `db:"event_type"`
	CategoryID  uuid.NullUUID  `db:"category_id"`
	Image       sql.NullString `db:"image"`

	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`

	// Price overrides the venue price when set; same lenient text format
	Price       sql.NullString `db:"price"`
	PricingMode sql.NullString `db:"pricing_mode"`

	Capacity int  `db:"capacity"`
	IsActive bool `db:"is_active"`

	// Joined data (not in DB, populated by queries)
	VenueName string `db:"-"`
	VenueCity string `db:"-"`
}

// BelongsTo checks event ownership
func (e *Event) BelongsTo(userID uuid.UUID) bool {
	return e.OrganizerID == userID
}
