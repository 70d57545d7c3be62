package event

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
)

// Repository defines event data access interface
type Repository interface {
	Create(ctx context.Context, e *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, f Filter, p booking.Pagination) ([]*Event, int, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID, p booking.Pagination) ([]*Event, int, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new event repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const eventSelectColumns = `
	e.id, e.organizer_id, e.venue_id, e.created_at, e.updated_at,
	e.name, e.description, e.event_type, e.category_id, e.image,
	e.start_date, e.end_date,
	e.price, e.pricing_mode,
	e.capacity, e.is_active
`

func (r *repository) Create(ctx context.Context, e *Event) error {
	query := `
		INSERT INTO events (
			id, organizer_id, venue_id,
			name, description, event_type, category_id, image,
			start_date, end_date,
			price, pricing_mode,
			capacity, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8,
			$9, $10,
			$11, $12,
			$13, $14, $15, $16
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.OrganizerID, e.VenueID,
		e.Name, e.Description, e.EventType, e.CategoryID, e.Image,
		e.StartDate, e.EndDate,
		e.Price, e.PricingMode,
		e.Capacity, e.IsActive, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var e Event
	query := `
		SELECT ` + eventSelectColumns + `, v.name AS venue_name, v.city AS venue_city
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE e.id = $1
	`
	row := r.db.QueryRowxContext(ctx, query, id)
	if err := scanEvent(row, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *repository) List(ctx context.Context, f Filter, p booking.Pagination) ([]*Event, int, error) {
	where := []string{"e.is_active = true"}
	args := []interface{}{}

	if f.VenueID != nil {
		args = append(args, *f.VenueID)
		where = append(where, "e.venue_id = $"+strconv.Itoa(len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, "e.category_id = $"+strconv.Itoa(len(args)))
	}
	if f.EventType != "" {
		args = append(args, f.EventType)
		where = append(where, "e.event_type = $"+strconv.Itoa(len(args)))
	}
	if f.City != "" {
		args = append(args, "%"+f.City+"%")
		where = append(where, "v.city ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.From != nil {
		args = append(args, *f.From)
		where = append(where, "e.end_date >= $"+strconv.Itoa(len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `
		SELECT COUNT(*)
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE ` + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Limit, p.Offset())
	query := `
		SELECT ` + eventSelectColumns + `, v.name AS venue_name, v.city AS venue_city
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE ` + whereClause + `
		ORDER BY e.start_date
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	return r.queryEvents(ctx, query, args, total)
}

func (r *repository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, p booking.Pagination) ([]*Event, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM events WHERE organizer_id = $1`, organizerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + eventSelectColumns + `, v.name AS venue_name, v.city AS venue_city
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE e.organizer_id = $1
		ORDER BY e.start_date DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryEvents(ctx, query, []interface{}{organizerID, p.Limit, p.Offset()}, total)
}

func (r *repository) Update(ctx context.Context, e *Event) error {
	query := `
		UPDATE events SET
			name = $2, description = $3, event_type = $4, category_id = $5, image = $6,
			start_date = $7, end_date = $8,
			price = $9, pricing_mode = $10,
			capacity = $11, is_active = $12, updated_at = $13
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		e.ID, e.Name, e.Description, e.EventType, e.CategoryID, e.Image,
		e.StartDate, e.EndDate,
		e.Price, e.PricingMode,
		e.Capacity, e.IsActive, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) queryEvents(ctx context.Context, query string, args []interface{}, total int) ([]*Event, int, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var e Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, err
		}
		events = append(events, &e)
	}
	return events, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner, e *Event) error {
	return row.Scan(
		&e.ID, &e.OrganizerID, &e.VenueID, &e.CreatedAt, &e.UpdatedAt,
		&e.Name, &e.Description, &e.EventType, &e.CategoryID, &e.Image,
		&e.StartDate, &e.EndDate,
		&e.Price, &e.PricingMode,
		&e.Capacity, &e.IsActive,
		&e.VenueName, &e.VenueCity,
	)
}
