package event

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

type fakeRepo struct {
	events map[uuid.UUID]*Event
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[uuid.UUID]*Event)}
}

func (f *fakeRepo) Create(_ context.Context, e *Event) error {
	f.events[e.ID] = e
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter, _ booking.Pagination) ([]*Event, int, error) {
	var out []*Event
	for _, e := range f.events {
		if e.IsActive {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListByOrganizer(_ context.Context, organizerID uuid.UUID, _ booking.Pagination) ([]*Event, int, error) {
	var out []*Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, e *Event) error {
	if _, ok := f.events[e.ID]; !ok {
		return ErrNotFound
	}
	f.events[e.ID] = e
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.events[id]; !ok {
		return ErrNotFound
	}
	delete(f.events, id)
	return nil
}

type fakeVenues struct {
	snapshots map[uuid.UUID]*booking.VenueSnapshot
}

func (f *fakeVenues) SnapshotByID(_ context.Context, id uuid.UUID) (*booking.VenueSnapshot, error) {
	v, ok := f.snapshots[id]
	if !ok {
		return nil, ErrVenueNotFound
	}
	return v, nil
}

func fixtures() (*Service, *booking.VenueSnapshot) {
	venue := &booking.VenueSnapshot{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Rosewood Banquets",
		City:    "Jaipur",
	}
	venues := &fakeVenues{snapshots: map[uuid.UUID]*booking.VenueSnapshot{venue.ID: venue}}
	return NewService(newFakeRepo(), venues), venue
}

func TestCreateRequiresVenueOwnership(t *testing.T) {
	svc, venue := fixtures()

	req := &CreateEventRequest{
		VenueID:   venue.ID.String(),
		Name:      "Winter Expo",
		EventType: "conference",
		StartDate: "2026-12-01",
		EndDate:   "2026-12-03",
	}

	_, err := svc.Create(context.Background(), uuid.New(), req)
	if !errors.Is(err, ErrNotVenueOwner) {
		t.Fatalf("expected ErrNotVenueOwner for a stranger, got %v", err)
	}

	e, err := svc.Create(context.Background(), venue.OwnerID, req)
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if e.VenueName != "Rosewood Banquets" || e.VenueCity != "Jaipur" {
		t.Fatal("venue identity not denormalized onto the event")
	}
	if !e.IsActive {
		t.Fatal("new events should be active")
	}
}

func TestCreateReconcilesDates(t *testing.T) {
	svc, venue := fixtures()

	e, err := svc.Create(context.Background(), venue.OwnerID, &CreateEventRequest{
		VenueID:   venue.ID.String(),
		Name:      "Backwards Fest",
		EventType: "conference",
		StartDate: "2026-12-03",
		EndDate:   "2026-12-01",
	})
	if err != nil {
		t.Fatalf("inverted range must be repaired: %v", err)
	}
	if e.StartDate.After(e.EndDate) {
		t.Fatal("stored window is still inverted")
	}
}

func TestSnapshotCarriesPriceOverrides(t *testing.T) {
	svc, venue := fixtures()

	e, err := svc.Create(context.Background(), venue.OwnerID, &CreateEventRequest{
		VenueID:     venue.ID.String(),
		Name:        "Gala Night",
		EventType:   "anniversary",
		StartDate:   "2026-11-20",
		EndDate:     "2026-11-20",
		Price:       "1500",
		PricingMode: "per_person",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	snap, err := svc.SnapshotByID(context.Background(), e.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.VenueID != venue.ID {
		t.Fatal("snapshot must point at the hosting venue")
	}
	if snap.Price != "1500" || snap.PricingMode != "per_person" {
		t.Fatalf("price overrides not carried: price=%q mode=%q", snap.Price, snap.PricingMode)
	}
}

func TestUpdateAuthorization(t *testing.T) {
	svc, venue := fixtures()

	e, err := svc.Create(context.Background(), venue.OwnerID, &CreateEventRequest{
		VenueID:   venue.ID.String(),
		Name:      "Gala Night",
		EventType: "anniversary",
		StartDate: "2026-11-20",
		EndDate:   "2026-11-20",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	name := "Gala Evening"
	if _, err := svc.Update(context.Background(), e.ID, uuid.New(), string(user.RoleOrganizer), &UpdateEventRequest{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), e.ID, venue.OwnerID, string(user.RoleOrganizer), &UpdateEventRequest{Name: &name})
	if err != nil {
		t.Fatalf("organizer update: %v", err)
	}
	if updated.Name != "Gala Evening" {
		t.Fatalf("name not updated, got %q", updated.Name)
	}
}
