package notification

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
)

// RealtimePublisher pushes freshly created notifications to connected clients
type RealtimePublisher interface {
	NotifyNew(ctx context.Context, userID uuid.UUID, n *NotificationResponse, unreadCount int) error
}

// Service handles notification business logic
type Service struct {
	repo     Repository
	realtime RealtimePublisher // nil disables realtime push
}

// NewService creates notification service
func NewService(repo Repository, realtime RealtimePublisher) *Service {
	return &Service{repo: repo, realtime: realtime}
}

// Notify persists a notification and pushes it to the user's live connections
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, typ Type, title, body string, data *NotificationData) error {
	n := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      typ,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if body != "" {
		n.Body = sql.NullString{String: body, Valid: true}
	}
	n.SetData(data)

	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	if s.realtime != nil {
		unread, err := s.repo.UnreadCount(ctx, userID)
		if err != nil {
			unread = 0
		}
		resp := NotificationResponseFromEntity(n)
		if err := s.realtime.NotifyNew(ctx, userID, &resp, unread); err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("realtime notification push failed")
		}
	}
	return nil
}

// ListByUser returns the user's notifications, newest first
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// UnreadCount returns the number of unread notifications
func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}

// MarkRead marks one notification read
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

// MarkAllRead marks all of the user's notifications read
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// BookingNotifier adapts the service to the booking flow's notification port.
// Delivery failures never fail a booking; they are logged inside Notify.
type BookingNotifier struct {
	service *Service
}

// NewBookingNotifier creates the booking-facing adapter
func NewBookingNotifier(service *Service) *BookingNotifier {
	return &BookingNotifier{service: service}
}

func (a *BookingNotifier) NotifyBookingCreated(ctx context.Context, ownerID, bookingID, venueID uuid.UUID, eventDate time.Time) error {
	return a.service.Notify(ctx, ownerID, TypeBookingCreated,
		"New booking request",
		fmt.Sprintf("A customer requested a booking for %s", eventDate.Format("2 Jan 2006")),
		&NotificationData{BookingID: &bookingID, VenueID: &venueID, EventDate: eventDate.Format(booking.DateLayout)},
	)
}

func (a *BookingNotifier) NotifyBookingCancelled(ctx context.Context, ownerID, bookingID, venueID uuid.UUID, reason string) error {
	return a.service.Notify(ctx, ownerID, TypeBookingCancelled,
		"Booking cancelled",
		"A customer cancelled their booking",
		&NotificationData{BookingID: &bookingID, VenueID: &venueID, Reason: reason},
	)
}

func (a *BookingNotifier) NotifyBookingStatusChanged(ctx context.Context, customerID, bookingID uuid.UUID, status booking.Status) error {
	var typ Type
	var title string
	switch status {
	case booking.StatusConfirmed:
		typ, title = TypeBookingConfirmed, "Booking confirmed"
	case booking.StatusRejected:
		typ, title = TypeBookingRejected, "Booking rejected"
	case booking.StatusCompleted:
		typ, title = TypeBookingCompleted, "Booking completed"
	default:
		return nil
	}

	return a.service.Notify(ctx, customerID, typ, title, "", &NotificationData{BookingID: &bookingID})
}
