package venue

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

// Repository defines venue data access interface
type Repository interface {
	Create(ctx context.Context, v *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context, f Filter, p booking.Pagination) ([]*Venue, int, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, p booking.Pagination) ([]*Venue, int, error)
	Update(ctx context.Context, v *Venue) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates new venue repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const venueSelectColumns = `
	v.id, v.owner_id, v.created_at, v.updated_at,
	v.name, v.description, v.category_id,
	v.city, v.address,
	v.capacity, v.image, v.images,
	v.price, v.service_fee, v.gst_percent, v.pricing_mode,
	v.inclusions, v.exclusions,
	v.full_refund_days, v.partial_refund_days, v.partial_refund_percent,
	v.rating, v.review_count, v.is_active
`

func (r *repository) Create(ctx context.Context, v *Venue) error {
	query := `
		INSERT INTO venues (
			id, owner_id, name, description, category_id,
			city, address, capacity, image, images,
			price, service_fee, gst_percent, pricing_mode,
			inclusions, exclusions,
			full_refund_days, partial_refund_days, partial_refund_percent,
			is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $16,
			$17, $18, $19,
			$20, $21, $22
		)
	`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.OwnerID, v.Name, v.Description, v.CategoryID,
		v.City, v.Address, v.Capacity, v.Image, v.Images,
		v.Price, v.ServiceFee, v.GSTPercent, v.PricingMode,
		v.Inclusions, v.Exclusions,
		v.FullRefundDays, v.PartialRefundDays, v.PartialRefundPercent,
		v.IsActive, v.CreatedAt, v.UpdatedAt,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var v Venue
	query := `
		SELECT ` + venueSelectColumns + `, COALESCE(c.name, '') AS category_name
		FROM venues v
		LEFT JOIN categories c ON c.id = v.category_id
		WHERE v.id = $1
	`
	row := r.db.QueryRowxContext(ctx, query, id)
	if err := scanVenue(row, &v); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *repository) List(ctx context.Context, f Filter, p booking.Pagination) ([]*Venue, int, error) {
	where := []string{"v.is_active = true"}
	args := []interface{}{}

	if f.City != "" {
		args = append(args, "%"+f.City+"%")
		where = append(where, "v.city ILIKE $"+strconv.Itoa(len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, "v.category_id = $"+strconv.Itoa(len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, "v.name ILIKE $"+strconv.Itoa(len(args)))
	}
	// price is stored as text; strip non-numeric characters before comparing
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		where = append(where, "NULLIF(regexp_replace(v.price, '[^0-9.]', '', 'g'), '')::numeric >= $"+strconv.Itoa(len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		where = append(where, "NULLIF(regexp_replace(v.price, '[^0-9.]', '', 'g'), '')::numeric <= $"+strconv.Itoa(len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM venues v WHERE ` + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	args = append(args, p.Limit, p.Offset())
	query := `
		SELECT ` + venueSelectColumns + `, COALESCE(c.name, '') AS category_name
		FROM venues v
		LEFT JOIN categories c ON c.id = v.category_id
		WHERE ` + whereClause + `
		ORDER BY v.rating DESC, v.created_at DESC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	return r.queryVenues(ctx, query, args, total)
}

func (r *repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, p booking.Pagination) ([]*Venue, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM venues WHERE owner_id = $1`, ownerID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + venueSelectColumns + `, COALESCE(c.name, '') AS category_name
		FROM venues v
		LEFT JOIN categories c ON c.id = v.category_id
		WHERE v.owner_id = $1
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`
	return r.queryVenues(ctx, query, []interface{}{ownerID, p.Limit, p.Offset()}, total)
}

func (r *repository) Update(ctx context.Context, v *Venue) error {
	query := `
		UPDATE venues SET
			name = $2, description = $3, category_id = $4,
			city = $5, address = $6, capacity = $7, image = $8, images = $9,
			price = $10, service_fee = $11, gst_percent = $12, pricing_mode = $13,
			inclusions = $14, exclusions = $15,
			full_refund_days = $16, partial_refund_days = $17, partial_refund_percent = $18,
			is_active = $19, updated_at = $20
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		v.ID, v.Name, v.Description, v.CategoryID,
		v.City, v.Address, v.Capacity, v.Image, v.Images,
		v.Price, v.ServiceFee, v.GSTPercent, v.PricingMode,
		v.Inclusions, v.Exclusions,
		v.FullRefundDays, v.PartialRefundDays, v.PartialRefundPercent,
		v.IsActive, v.UpdatedAt,
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
	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
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

func (r *repository) queryVenues(ctx context.Context, query string, args []interface{}, total int) ([]*Venue, int, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var venues []*Venue
	for rows.Next() {
		var v Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, 0, err
		}
		venues = append(venues, &v)
	}
	return venues, total, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVenue(row rowScanner, v *Venue) error {
	return row.Scan(
		&v.ID, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt,
		&v.Name, &v.Description, &v.CategoryID,
		&v.City, &v.Address,
		&v.Capacity, &v.Image, &v.Images,
		&v.Price, &v.ServiceFee, &v.GSTPercent, &v.PricingMode,
		&v.Inclusions, &v.Exclusions,
		&v.FullRefundDays, &v.PartialRefundDays, &v.PartialRefundPercent,
		&v.Rating, &v.ReviewCount, &v.IsActive,
		&v.CategoryName,
	)
}
