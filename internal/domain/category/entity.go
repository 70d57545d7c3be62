package category

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Category represents a venue/event category (matches categories table)
type Category struct {
	ID        uuid.UUID      `db:"id"`
	Name      string         `db:"name"`
	Slug      string         `db:"slug"`
	Icon      sql.NullString `db:"icon"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`

	// Joined data (not in DB, populated by queries)
	VenueCount int `db:"-"`
}
