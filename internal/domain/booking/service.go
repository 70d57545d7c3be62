package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

// Service handles booking business logic
type Service struct {
	bookings Repository
	venues   VenueProvider
	events   EventProvider
	notifs   Notifier // nil disables notifications

	now func() time.Time
}

// NewService creates booking service
func NewService(bookings Repository, venues VenueProvider, events EventProvider, notifs Notifier) *Service {
	return &Service{
		bookings: bookings,
		venues:   venues,
		events:   events,
		notifs:   notifs,
		now:      time.Now,
	}
}

// Quote computes a price preview without persisting anything
func (s *Service) Quote(ctx context.Context, req *QuoteRequest) (*QuoteResponse, error) {
	venue, event, err := s.resolveTarget(ctx, req.VenueID, req.EventID)
	if err != nil {
		return nil, err
	}

	dr, err := ReconcileRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	bd := ComputeBreakdown(quoteInput(venue, event, dr.Days, req.GuestCount))
	return &QuoteResponse{Range: dr, Breakdown: bd}, nil
}

// Create reconciles dates, computes the price breakdown, assembles the
// booking payload and persists it
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	// Fail fast before touching any collaborator
	if userID == uuid.Nil || (req.VenueID == "" && req.EventID == "") {
		return nil, ErrMissingIdentifier
	}

	dr, err := ReconcileRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	venue, event, err := s.resolveTarget(ctx, req.VenueID, req.EventID)
	if err != nil {
		return nil, err
	}

	bd := ComputeBreakdown(quoteInput(venue, event, dr.Days, req.GuestCount))

	identity := Identity{UserID: userID, VenueID: venue.ID}
	if event != nil {
		id := event.ID
		identity.EventID = &id
	}

	eventType := req.EventType
	if eventType == "" && event != nil {
		eventType = event.EventType
	}

	payload, err := BuildRequest(identity, dr, bd, ContactInfo{
		Name:            req.ContactName,
		Email:           req.ContactEmail,
		Phone:           req.ContactPhone,
		SpecialRequests: req.SpecialRequests,
	}, Snapshot{
		VenueName:  venue.Name,
		VenueImage: venue.Image,
		Location:   venue.City,
		EventType:  eventType,
		Inclusions: venue.Inclusions,
		Exclusions: venue.Exclusions,
		Policy:     venue.Policy,
	})
	if err != nil {
		return nil, err
	}

	b := bookingFromRequest(payload, s.now())
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, venue.OwnerID, b.ID, venue.ID, b.EventDate)
	}

	return b, nil
}

// GetByID returns a booking visible to the actor: the booking customer, the
// venue owner, or an admin
func (s *Service) GetByID(ctx context.Context, id, actorID uuid.UUID, actorRole string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.BelongsTo(actorID) || actorRole == string(user.RoleAdmin) {
		return b, nil
	}

	venue, err := s.venues.SnapshotByID(ctx, b.VenueID)
	if err == nil && venue.OwnerID == actorID {
		return b, nil
	}
	return nil, ErrForbidden
}

// ListMy returns the actor's own bookings
func (s *Service) ListMy(ctx context.Context, userID uuid.UUID, p Pagination) ([]*Booking, int, error) {
	return s.bookings.ListByUser(ctx, userID, p)
}

// ListForVenue returns bookings of a venue, for its owner or an admin
func (s *Service) ListForVenue(ctx context.Context, venueID, actorID uuid.UUID, actorRole string, p Pagination) ([]*Booking, int, error) {
	if actorRole != string(user.RoleAdmin) {
		venue, err := s.venues.SnapshotByID(ctx, venueID)
		if err != nil {
			return nil, 0, ErrVenueNotFound
		}
		if venue.OwnerID != actorID {
			return nil, 0, ErrForbidden
		}
	}
	return s.bookings.ListByVenue(ctx, venueID, p)
}

// UpdateStatus moves a booking along its lifecycle; only the venue owner (or
// an admin) may do this. Allowed transitions: pending → confirmed/rejected,
// confirmed → completed.
func (s *Service) UpdateStatus(ctx context.Context, id, actorID uuid.UUID, actorRole string, newStatus Status) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorRole != string(user.RoleAdmin) {
		venue, err := s.venues.SnapshotByID(ctx, b.VenueID)
		if err != nil {
			return nil, ErrVenueNotFound
		}
		if venue.OwnerID != actorID {
			return nil, ErrForbidden
		}
	}

	if !isValidTransition(b.Status, newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingStatusChanged(ctx, b.UserID, b.ID, newStatus)
	}

	return s.bookings.GetByID(ctx, id)
}

// Cancel cancels the actor's booking and computes the refund from the policy
// snapshot captured at booking time
func (s *Service) Cancel(ctx context.Context, id, actorID uuid.UUID, reason string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.BelongsTo(actorID) {
		return nil, ErrForbidden
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}
	if !b.IsCancellable() {
		return nil, ErrInvalidStatusTransition
	}

	daysBefore := daysBetween(s.now(), b.EventDate)
	refund := b.Policy().RefundAmount(b.TotalAmount, daysBefore)

	if err := s.bookings.Cancel(ctx, id, reason, refund); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		venue, err := s.venues.SnapshotByID(ctx, b.VenueID)
		if err == nil {
			_ = s.notifs.NotifyBookingCancelled(ctx, venue.OwnerID, b.ID, venue.ID, reason)
		}
	}

	return s.bookings.GetByID(ctx, id)
}

// resolveTarget loads the venue (and event, when given) behind the booking.
// An event booking resolves its venue through the event.
func (s *Service) resolveTarget(ctx context.Context, venueIDStr, eventIDStr string) (*VenueSnapshot, *EventSnapshot, error) {
	var event *EventSnapshot

	venueID := uuid.Nil
	if venueIDStr != "" {
		id, err := uuid.Parse(venueIDStr)
		if err != nil {
			return nil, nil, ErrMissingIdentifier
		}
		venueID = id
	}

	if eventIDStr != "" {
		eventID, err := uuid.Parse(eventIDStr)
		if err != nil {
			return nil, nil, ErrMissingIdentifier
		}
		event, err = s.events.SnapshotByID(ctx, eventID)
		if err != nil || event == nil {
			return nil, nil, ErrEventNotFound
		}
		venueID = event.VenueID
	}

	if venueID == uuid.Nil {
		return nil, nil, ErrMissingIdentifier
	}

	venue, err := s.venues.SnapshotByID(ctx, venueID)
	if err != nil || venue == nil {
		return nil, nil, ErrVenueNotFound
	}
	return venue, event, nil
}

// quoteInput builds calculator input from the resolved snapshots. The event's
// price and pricing mode override the venue's when present.
func quoteInput(venue *VenueSnapshot, event *EventSnapshot, days, guests int) QuoteInput {
	priceRaw := venue.Price
	mode := venue.PricingMode
	if event != nil {
		if event.Price != "" {
			priceRaw = event.Price
		}
		if event.PricingMode != "" {
			mode = event.PricingMode
		}
	}

	return QuoteInput{
		UnitPrice:  PriceOrDefault(priceRaw),
		Days:       days,
		Guests:     guests,
		Mode:       PricingMode(mode),
		ServiceFee: venue.ServiceFee,
		GSTPercent: venue.GSTPercent,
	}
}

// bookingFromRequest maps the assembled payload onto the persistence entity
func bookingFromRequest(req *Request, now time.Time) *Booking {
	b := &Booking{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,

		UserID:  req.UserID,
		VenueID: req.VenueID,

		VenueName: req.VenueName,
		EventType: req.EventType,

		EventDate:    req.EventDate,
		EndDate:      req.EndDate,
		NumberOfDays: req.NumberOfDays,

		GuestCount:   req.GuestCount,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,

		PricingMode: string(req.PricingMode),
		UnitPrice:   req.UnitPrice,
		BasePrice:   req.BasePrice,
		ServiceFee:  req.ServiceFee,
		GSTPercent:  req.GSTPercent,
		GSTAmount:   req.GSTAmount,
		TotalAmount: req.TotalAmount,

		Inclusions:           req.Inclusions,
		Exclusions:           req.Exclusions,
		FullRefundDays:       req.Policy.FullRefundDays,
		PartialRefundDays:    req.Policy.PartialRefundDays,
		PartialRefundPercent: req.Policy.PartialRefundPercent,

		Status: StatusPending,
	}

	if req.EventID != nil {
		b.EventID = uuid.NullUUID{UUID: *req.EventID, Valid: true}
	}
	b.VenueImage = nullString(req.VenueImage)
	b.Location = nullString(req.Location)
	b.ContactPhone = nullString(req.ContactPhone)
	b.SpecialRequests = nullString(req.SpecialRequests)

	return b
}

func isValidTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusRejected
	case StatusConfirmed:
		return to == StatusCompleted
	default:
		return false
	}
}

// daysBetween counts whole calendar days from now until the event date
func daysBetween(now, eventDate time.Time) int {
	return int(toCalendarDay(eventDate).Sub(toCalendarDay(now)).Hours() / 24)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
