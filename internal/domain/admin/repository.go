package admin

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Repository defines admin data access interface
type Repository interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates admin repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	// User stats
	r.db.GetContext(ctx, &stats.Users.Total, `SELECT COUNT(*) FROM users`)
	r.db.GetContext(ctx, &stats.Users.Customers, `SELECT COUNT(*) FROM users WHERE role = 'customer'`)
	r.db.GetContext(ctx, &stats.Users.Organizers, `SELECT COUNT(*) FROM users WHERE role = 'organizer'`)
	r.db.GetContext(ctx, &stats.Users.Banned, `SELECT COUNT(*) FROM users WHERE is_banned = true`)
	r.db.GetContext(ctx, &stats.Users.NewToday, `SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE`)
	r.db.GetContext(ctx, &stats.Users.NewThisWeek, `SELECT COUNT(*) FROM users WHERE created_at >= CURRENT_DATE - INTERVAL '7 days'`)

	// Venue stats
	r.db.GetContext(ctx, &stats.Venues.Total, `SELECT COUNT(*) FROM venues`)
	r.db.GetContext(ctx, &stats.Venues.Active, `SELECT COUNT(*) FROM venues WHERE is_active = true`)
	r.db.GetContext(ctx, &stats.Venues.NewToday, `SELECT COUNT(*) FROM venues WHERE created_at >= CURRENT_DATE`)

	// Event stats
	r.db.GetContext(ctx, &stats.Events.Total, `SELECT COUNT(*) FROM events`)
	r.db.GetContext(ctx, &stats.Events.Active, `SELECT COUNT(*) FROM events WHERE is_active = true`)

	// Booking stats
	r.db.GetContext(ctx, &stats.Bookings.Total, `SELECT COUNT(*) FROM bookings`)
	r.db.GetContext(ctx, &stats.Bookings.Pending, `SELECT COUNT(*) FROM bookings WHERE status = 'pending'`)
	r.db.GetContext(ctx, &stats.Bookings.Confirmed, `SELECT COUNT(*) FROM bookings WHERE status = 'confirmed'`)
	r.db.GetContext(ctx, &stats.Bookings.Cancelled, `SELECT COUNT(*) FROM bookings WHERE status = 'cancelled'`)
	r.db.GetContext(ctx, &stats.Bookings.Today, `SELECT COUNT(*) FROM bookings WHERE created_at >= CURRENT_DATE`)

	// Revenue stats
	r.db.GetContext(ctx, &stats.Revenue.Total, `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status IN ('confirmed', 'completed')`)
	r.db.GetContext(ctx, &stats.Revenue.ThisMonth, `SELECT COALESCE(SUM(total_amount), 0) FROM bookings WHERE status IN ('confirmed', 'completed') AND created_at >= DATE_TRUNC('month', CURRENT_DATE)`)
	r.db.GetContext(ctx, &stats.Revenue.Refunded, `SELECT COALESCE(SUM(refund_amount), 0) FROM bookings WHERE status = 'cancelled'`)

	return stats, nil
}
