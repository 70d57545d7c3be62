package event

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

// VenueOwnership answers whether a venue exists and who owns it. The venue
// service satisfies this through its booking snapshot.
type VenueOwnership interface {
	SnapshotByID(ctx context.Context, id uuid.UUID) (*booking.VenueSnapshot, error)
}

// Service handles event business logic
type Service struct {
	repo   Repository
	venues VenueOwnership
}

// NewService creates event service
func NewService(repo Repository, venues VenueOwnership) *Service {
	return &Service{repo: repo, venues: venues}
}

// Create publishes an event at one of the organizer's own venues
func (s *Service) Create(ctx context.Context, organizerID uuid.UUID, req *CreateEventRequest) (*Event, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	venue, err := s.venues.SnapshotByID(ctx, venueID)
	if err != nil {
		return nil, ErrVenueNotFound
	}
	if venue.OwnerID != organizerID {
		return nil, ErrNotVenueOwner
	}

	dr, err := booking.ReconcileRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &Event{
		ID:          uuid.New(),
		OrganizerID: organizerID,
		VenueID:     venueID,
		CreatedAt:   now,
		UpdatedAt:   now,

		Name:      req.Name,
		EventType: req.EventType,

		StartDate: dr.Start,
		EndDate:   dr.End,

		Capacity: req.Capacity,
		IsActive: true,

		VenueName: venue.Name,
		VenueCity: venue.City,
	}

	e.Description = nullString(req.Description)
	e.Image = nullString(req.Image)
	e.Price = nullString(req.Price.String())
	e.PricingMode = nullString(req.PricingMode)
	if req.CategoryID != "" {
		if id, err := uuid.Parse(req.CategoryID); err == nil {
			e.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByID returns a single event
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns active events matching the filter
func (s *Service) List(ctx context.Context, f Filter, p booking.Pagination) ([]*Event, int, error) {
	return s.repo.List(ctx, f, p)
}

// ListByOrganizer returns all of an organizer's events
func (s *Service) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, p booking.Pagination) ([]*Event, int, error) {
	return s.repo.ListByOrganizer(ctx, organizerID, p)
}

// Update modifies an event; only its organizer or an admin may do this
func (s *Service) Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, req *UpdateEventRequest) (*Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.BelongsTo(actorID) && actorRole != string(user.RoleAdmin) {
		return nil, ErrForbidden
	}

	if err := applyUpdate(e, req); err != nil {
		return nil, err
	}
	e.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an event; only its organizer or an admin may do this
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !e.BelongsTo(actorID) && actorRole != string(user.RoleAdmin) {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// SnapshotByID supplies the booking flow's view of an event. Satisfies
// booking.EventProvider.
func (s *Service) SnapshotByID(ctx context.Context, id uuid.UUID) (*booking.EventSnapshot, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snap := &booking.EventSnapshot{
		ID:        e.ID,
		VenueID:   e.VenueID,
		Name:      e.Name,
		EventType: e.EventType,
	}
	if e.Price.Valid {
		snap.Price = e.Price.String
	}
	if e.PricingMode.Valid {
		snap.PricingMode = e.PricingMode.String
	}
	return snap, nil
}

func applyUpdate(e *Event, req *UpdateEventRequest) error {
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Description != nil {
		e.Description = nullString(*req.Description)
	}
	if req.EventType != nil {
		e.EventType = *req.EventType
	}
	if req.CategoryID != nil {
		if id, err := uuid.Parse(*req.CategoryID); err == nil {
			e.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	if req.Image != nil {
		e.Image = nullString(*req.Image)
	}

	// date edits re-reconcile against the existing window
	if req.StartDate != nil || req.EndDate != nil {
		start := e.StartDate.Format(booking.DateLayout)
		end := e.EndDate.Format(booking.DateLayout)
		if req.StartDate != nil {
			start = *req.StartDate
		}
		if req.EndDate != nil {
			end = *req.EndDate
		}
		dr, err := booking.ReconcileRange(start, end)
		if err != nil {
			return err
		}
		e.StartDate = dr.Start
		e.EndDate = dr.End
	}

	if req.Price != nil {
		e.Price = nullString(req.Price.String())
	}
	if req.PricingMode != nil {
		e.PricingMode = nullString(*req.PricingMode)
	}
	if req.Capacity != nil {
		e.Capacity = *req.Capacity
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
