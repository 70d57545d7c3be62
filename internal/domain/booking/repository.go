package booking

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/bookmyspot/bookmyspot-api/internal/middleware"
)

// Pagination for listing
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page window
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Repository defines booking data access interface
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, p Pagination) ([]*Booking, int, error)
	ListByVenue(ctx context.Context, venueID uuid.UUID, p Pagination) ([]*Booking, int, error)
	List(ctx context.Context, status *Status, p Pagination) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Cancel(ctx context.Context, id uuid.UUID, reason string, refund float64) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new booking repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const bookingSelectColumns = `
	id, created_at, updated_at, user_id, venue_id, event_id,
	venue_name, venue_image, location, event_type,
	event_date, end_date, number_of_days,
	guest_count, contact_name, contact_email, contact_phone, special_requests,
	pricing_mode, unit_price, base_price, service_fee, gst_percent, gst_amount, total_amount,
	inclusions, exclusions, full_refund_days, partial_refund_days, partial_refund_percent,
	status, cancel_reason, refund_amount
`

func (r *repository) Create(ctx context.Context, b *Booking) error {
	query := `
		INSERT INTO bookings (
			id, user_id, venue_id, event_id,
			venue_name, venue_image, location, event_type,
			event_date, end_date, number_of_days,
			guest_count, contact_name, contact_email, contact_phone, special_requests,
			pricing_mode, unit_price, base_price, service_fee, gst_percent, gst_amount, total_amount,
			inclusions, exclusions, full_refund_days, partial_refund_days, partial_refund_percent,
			status
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23,
			$24, $25, $26, $27, $28,
			$29
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.UserID, b.VenueID, b.EventID,
		b.VenueName, b.VenueImage, b.Location, b.EventType,
		b.EventDate, b.EndDate, b.NumberOfDays,
		b.GuestCount, b.ContactName, b.ContactEmail, b.ContactPhone, b.SpecialRequests,
		b.PricingMode, b.UnitPrice, b.BasePrice, b.ServiceFee, b.GSTPercent, b.GSTAmount, b.TotalAmount,
		b.Inclusions, b.Exclusions, b.FullRefundDays, b.PartialRefundDays, b.PartialRefundPercent,
		b.Status,
	)
	if err != nil {
		log.Error().
			Str("request_id", middleware.GetRequestID(ctx)).
			Str("query", "bookings.create").
			Str("booking_id", b.ID.String()).
			Str("user_id", b.UserID.String()).
			Str("venue_id", b.VenueID.String()).
			Err(err).
			Msg("failed to insert booking")
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var b Booking
	query := `SELECT ` + bookingSelectColumns + ` FROM bookings WHERE id = $1`
	if err := r.db.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID, p Pagination) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID); err != nil {
		return nil, 0, err
	}

	bookings := []*Booking{}
	query := `SELECT ` + bookingSelectColumns + `
		FROM bookings WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &bookings, query, userID, p.Limit, p.Offset()); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) ListByVenue(ctx context.Context, venueID uuid.UUID, p Pagination) ([]*Booking, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings WHERE venue_id = $1`, venueID); err != nil {
		return nil, 0, err
	}

	bookings := []*Booking{}
	query := `SELECT ` + bookingSelectColumns + `
		FROM bookings WHERE venue_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &bookings, query, venueID, p.Limit, p.Offset()); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) List(ctx context.Context, status *Status, p Pagination) ([]*Booking, int, error) {
	where := ""
	args := []interface{}{}
	if status != nil {
		where = ` WHERE status = $1`
		args = append(args, *status)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM bookings`+where, args...); err != nil {
		return nil, 0, err
	}

	bookings := []*Booking{}
	limitPos := len(args) + 1
	query := `SELECT ` + bookingSelectColumns + ` FROM bookings` + where +
		` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(limitPos) + ` OFFSET $` + strconv.Itoa(limitPos+1)
	args = append(args, p.Limit, p.Offset())
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id, status)
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

func (r *repository) Cancel(ctx context.Context, id uuid.UUID, reason string, refund float64) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancel_reason = $2, refund_amount = $3, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id, reason, refund)
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
