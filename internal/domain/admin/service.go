package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

// Service handles admin business logic
type Service struct {
	repo     Repository
	users    user.Repository
	bookings booking.Repository
}

// NewService creates admin service
func NewService(repo Repository, users user.Repository, bookings booking.Repository) *Service {
	return &Service{repo: repo, users: users, bookings: bookings}
}

// GetDashboardStats returns the platform dashboard snapshot
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	return s.repo.GetDashboardStats(ctx)
}

// ListUsers returns a page of all users
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*user.User, int, error) {
	return s.users.List(ctx, limit, offset)
}

// SetUserBanned bans or unbans a user. Admins cannot ban other admins.
func (s *Service) SetUserBanned(ctx context.Context, adminID, userID uuid.UUID, banned bool) error {
	if adminID == userID {
		return ErrCannotBanSelf
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.IsAdmin() {
		return ErrCannotBanAdmin
	}

	if err := s.users.SetBanned(ctx, userID, banned); err != nil {
		return err
	}

	log.Info().
		Str("admin_id", adminID.String()).
		Str("user_id", userID.String()).
		Bool("banned", banned).
		Msg("admin changed user ban state")
	return nil
}

// ListBookings returns a page of all bookings, optionally filtered by status
func (s *Service) ListBookings(ctx context.Context, status *booking.Status, p booking.Pagination) ([]*booking.Booking, int, error) {
	return s.bookings.List(ctx, status, p)
}
