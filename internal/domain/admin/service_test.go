package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

type fakeUserRepo struct {
	users  map[uuid.UUID]*user.User
	banned map[uuid.UUID]bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[uuid.UUID]*user.User),
		banned: make(map[uuid.UUID]bool),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, _ string) error {
	return nil
}

func (f *fakeUserRepo) SetBanned(_ context.Context, id uuid.UUID, banned bool) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrNotFound
	}
	f.banned[id] = banned
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, int, error) {
	var out []*user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, len(out), nil
}

func TestSetUserBannedGuards(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewService(nil, users, nil)

	adminID := uuid.New()
	otherAdminID := uuid.New()
	customerID := uuid.New()
	users.Create(context.Background(), &user.User{ID: otherAdminID, Role: user.RoleAdmin})
	users.Create(context.Background(), &user.User{ID: customerID, Role: user.RoleCustomer})

	if err := svc.SetUserBanned(context.Background(), adminID, adminID, true); !errors.Is(err, ErrCannotBanSelf) {
		t.Fatalf("expected ErrCannotBanSelf, got %v", err)
	}
	if err := svc.SetUserBanned(context.Background(), adminID, otherAdminID, true); !errors.Is(err, ErrCannotBanAdmin) {
		t.Fatalf("expected ErrCannotBanAdmin, got %v", err)
	}
	if err := svc.SetUserBanned(context.Background(), adminID, uuid.New(), true); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}

	if err := svc.SetUserBanned(context.Background(), adminID, customerID, true); err != nil {
		t.Fatalf("banning a customer: %v", err)
	}
	if !users.banned[customerID] {
		t.Fatal("ban not applied")
	}

	if err := svc.SetUserBanned(context.Background(), adminID, customerID, false); err != nil {
		t.Fatalf("unbanning: %v", err)
	}
	if users.banned[customerID] {
		t.Fatal("unban not applied")
	}
}
