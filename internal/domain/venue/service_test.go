package venue

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/booking"
	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

type fakeRepo struct {
	venues map[uuid.UUID]*Venue
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{venues: make(map[uuid.UUID]*Venue)}
}

func (f *fakeRepo) Create(_ context.Context, v *Venue) error {
	f.venues[v.ID] = v
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Venue, error) {
	v, ok := f.venues[id]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter, _ booking.Pagination) ([]*Venue, int, error) {
	var out []*Venue
	for _, v := range f.venues {
		if v.IsActive && (filter.City == "" || v.City == filter.City) {
			out = append(out, v)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _ booking.Pagination) ([]*Venue, int, error) {
	var out []*Venue
	for _, v := range f.venues {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, v *Venue) error {
	if _, ok := f.venues[v.ID]; !ok {
		return ErrNotFound
	}
	f.venues[v.ID] = v
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.venues[id]; !ok {
		return ErrNotFound
	}
	delete(f.venues, id)
	return nil
}

func createTestVenue(t *testing.T, svc *Service, ownerID uuid.UUID) *Venue {
	t.Helper()
	fee := 500.0
	v, err := svc.Create(context.Background(), ownerID, &CreateVenueRequest{
		Name:       "Rosewood Banquets",
		City:       "Jaipur",
		Price:      "₹10,000",
		ServiceFee: &fee,
		Inclusions: []string{"catering", "decor"},
	})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}
	return v
}

func TestSnapshotByID(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ownerID := uuid.New()
	v := createTestVenue(t, svc, ownerID)

	snap, err := svc.SnapshotByID(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.OwnerID != ownerID || snap.Name != "Rosewood Banquets" || snap.City != "Jaipur" {
		t.Fatal("snapshot does not carry the venue identity")
	}
	if snap.Price != "₹10,000" {
		t.Fatalf("snapshot must carry the raw price text, got %q", snap.Price)
	}
	if snap.ServiceFee == nil || *snap.ServiceFee != 500 {
		t.Fatal("flat service fee not carried onto the snapshot")
	}
	// venue never set a policy; snapshot falls back to the platform default
	if snap.Policy != booking.DefaultCancellationPolicy() {
		t.Fatalf("expected default policy, got %+v", snap.Policy)
	}
}

func TestSnapshotCarriesCustomPolicy(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	v, err := svc.Create(context.Background(), uuid.New(), &CreateVenueRequest{
		Name:                 "Strict Hall",
		City:                 "Pune",
		Price:                "5000",
		FullRefundDays:       14,
		PartialRefundDays:    7,
		PartialRefundPercent: 25,
	})
	if err != nil {
		t.Fatalf("create venue: %v", err)
	}

	snap, err := svc.SnapshotByID(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := booking.CancellationPolicy{FullRefundDays: 14, PartialRefundDays: 7, PartialRefundPercent: 25}
	if snap.Policy != want {
		t.Fatalf("expected custom policy %+v, got %+v", want, snap.Policy)
	}
}

func TestUpdateAuthorization(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ownerID := uuid.New()
	v := createTestVenue(t, svc, ownerID)

	newName := "Rosewood Grand"

	_, err := svc.Update(context.Background(), v.ID, uuid.New(), string(user.RoleOrganizer), &UpdateVenueRequest{Name: &newName})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), v.ID, ownerID, string(user.RoleOrganizer), &UpdateVenueRequest{Name: &newName})
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Name != "Rosewood Grand" {
		t.Fatalf("name not updated, got %q", updated.Name)
	}

	// admin may update anyone's venue
	city := "Udaipur"
	if _, err := svc.Update(context.Background(), v.ID, uuid.New(), string(user.RoleAdmin), &UpdateVenueRequest{City: &city}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
}

func TestUpdateLeavesUnsetFieldsAlone(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ownerID := uuid.New()
	v := createTestVenue(t, svc, ownerID)

	price := booking.PriceText("₹12,000")
	updated, err := svc.Update(context.Background(), v.ID, ownerID, string(user.RoleOrganizer), &UpdateVenueRequest{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.Price != "₹12,000" {
		t.Fatalf("price not updated, got %q", updated.Price)
	}
	if updated.Name != "Rosewood Banquets" || updated.City != "Jaipur" {
		t.Fatal("unset fields must stay untouched")
	}
	if !updated.ServiceFee.Valid || updated.ServiceFee.Float64 != 500 {
		t.Fatal("service fee must stay untouched")
	}
}

func TestDeleteAuthorization(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)
	ownerID := uuid.New()
	v := createTestVenue(t, svc, ownerID)

	if err := svc.Delete(context.Background(), v.ID, uuid.New(), string(user.RoleOrganizer)); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), v.ID, ownerID, string(user.RoleOrganizer)); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), v.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	// a nil *Cache must behave as a permanent miss, never panic
	var c *Cache
	id := uuid.New()
	if got := c.Get(context.Background(), id); got != nil {
		t.Fatal("nil cache must miss")
	}
	c.Set(context.Background(), &Venue{ID: id, Description: sql.NullString{}})
	c.Invalidate(context.Background(), id)
}
