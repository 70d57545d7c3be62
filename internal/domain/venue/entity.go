package venue

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Venue represents a bookable venue (matches venues table)
type Venue struct {
	ID        uuid.UUID `db:"id"`
	OwnerID   uuid.UUID `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CategoryID  uuid.NullUUID  `db:"category_id"`

	City    string         `db:"city"`
	Address sql.NullString `db:"address"`

	Capacity int            `db:"capacity"`
	Image    sql.NullString `db:"image"` // external URL
	Images   pq.StringArray `db:"images"`

	// Price is stored as text: a bare number or a currency-formatted string.
	// The booking calculator parses it leniently.
	Price       string          `db:"price"`
	ServiceFee  sql.NullFloat64 `db:"service_fee"` // flat override
	GSTPercent  sql.NullFloat64 `db:"gst_percent"`
	PricingMode string          `db:"pricing_mode"`

	Inclusions pq.StringArray `db:"inclusions"`
	Exclusions pq.StringArray `db:"exclusions"`

	// Cancellation policy; zero means platform default
	FullRefundDays       int     `db:"full_refund_days"`
	PartialRefundDays    int     `db:"partial_refund_days"`
	PartialRefundPercent float64 `db:"partial_refund_percent"`

	Rating      float64 `db:"rating"`
	ReviewCount int     `db:"review_count"`
	IsActive    bool    `db:"is_active"`

	// Joined data (not in DB, populated by queries)
	CategoryName string `db:"-"`
}

// BelongsTo checks venue ownership
func (v *Venue) BelongsTo(userID uuid.UUID) bool {
	return v.OwnerID == userID
}
