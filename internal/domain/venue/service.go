package venue

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

// Service handles venue business logic
type Service struct {
	repo  Repository
	cache *Cache // nil disables caching
}

// NewService creates venue service
func NewService(repo Repository, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Create adds a venue owned by the acting organizer
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req *CreateVenueRequest) (*Venue, error) {
	now := time.Now()
	v := &Venue{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,

		Name:     req.Name,
		City:     req.City,
		Capacity: req.Capacity,
		Images:   req.Images,

		Price:       req.Price.String(),
		PricingMode: req.PricingMode,

		Inclusions: req.Inclusions,
		Exclusions: req.Exclusions,

		FullRefundDays:       req.FullRefundDays,
		PartialRefundDays:    req.PartialRefundDays,
		PartialRefundPercent: req.PartialRefundPercent,

		IsActive: true,
	}

	v.Description = nullString(req.Description)
	v.Address = nullString(req.Address)
	v.Image = nullString(req.Image)
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err == nil {
			v.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	if req.ServiceFee != nil {
		v.ServiceFee = sql.NullFloat64{Float64: *req.ServiceFee, Valid: true}
	}
	if req.GSTPercent != nil {
		v.GSTPercent = sql.NullFloat64{Float64: *req.GSTPercent, Valid: true}
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// GetByID returns a venue, served through the read-through cache
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	if v := s.cache.Get(ctx, id); v != nil {
		return v, nil
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, v)
	return v, nil
}

// List returns active venues matching the filter
func (s *Service) List(ctx context.Context, f Filter, p booking.Pagination) ([]*Venue, int, error) {
	return s.repo.List(ctx, f, p)
}

// ListByOwner returns all of an organizer's venues, active or not
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID, p booking.Pagination) ([]*Venue, int, error) {
	return s.repo.ListByOwner(ctx, ownerID, p)
}

// Update modifies a venue; only its owner or an admin may do this
func (s *Service) Update(ctx context.Context, id, actorID uuid.UUID, actorRole string, req *UpdateVenueRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.BelongsTo(actorID) && actorRole != string(user.RoleAdmin) {
		return nil, ErrForbidden
	}

	applyUpdate(v, req)
	v.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return v, nil
}

// Delete removes a venue; only its owner or an admin may do this
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID, actorRole string) error {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !v.BelongsTo(actorID) && actorRole != string(user.RoleAdmin) {
		return ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, id)
	return nil
}

// SnapshotByID supplies the booking flow's view of a venue. Satisfies
// booking.VenueProvider.
func (s *Service) SnapshotByID(ctx context.Context, id uuid.UUID) (*booking.VenueSnapshot, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snap := &booking.VenueSnapshot{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		Name:        v.Name,
		City:        v.City,
		Price:       v.Price,
		PricingMode: v.PricingMode,
		Inclusions:  v.Inclusions,
		Exclusions:  v.Exclusions,
		Policy:      policyOf(v),
	}
	if v.Image.Valid {
		snap.Image = v.Image.String
	}
	if v.ServiceFee.Valid {
		fee := v.ServiceFee.Float64
		snap.ServiceFee = &fee
	}
	if v.GSTPercent.Valid {
		gst := v.GSTPercent.Float64
		snap.GSTPercent = &gst
	}
	return snap, nil
}

func applyUpdate(v *Venue, req *UpdateVenueRequest) {
	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Description != nil {
		v.Description = nullString(*req.Description)
	}
	if req.CategoryID != nil {
		if id, err := uuid.Parse(*req.CategoryID); err == nil {
			v.CategoryID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.Address != nil {
		v.Address = nullString(*req.Address)
	}
	if req.Capacity != nil {
		v.Capacity = *req.Capacity
	}
	if req.Image != nil {
		v.Image = nullString(*req.Image)
	}
	if req.Images != nil {
		v.Images = *req.Images
	}
	if req.Price != nil {
		v.Price = req.Price.String()
	}
	if req.ServiceFee != nil {
		v.ServiceFee = sql.NullFloat64{Float64: *req.ServiceFee, Valid: true}
	}
	if req.GSTPercent != nil {
		v.GSTPercent = sql.NullFloat64{Float64: *req.GSTPercent, Valid: true}
	}
	if req.PricingMode != nil {
		v.PricingMode = *req.PricingMode
	}
	if req.Inclusions != nil {
		v.Inclusions = *req.Inclusions
	}
	if req.Exclusions != nil {
		v.Exclusions = *req.Exclusions
	}
	if req.FullRefundDays != nil {
		v.FullRefundDays = *req.FullRefundDays
	}
	if req.PartialRefundDays != nil {
		v.PartialRefundDays = *req.PartialRefundDays
	}
	if req.PartialRefundPercent != nil {
		v.PartialRefundPercent = *req.PartialRefundPercent
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
