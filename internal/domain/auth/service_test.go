package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/jwt"
	"github.com/bookmyspot/bookmyspot-api/internal/pkg/password"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
	byID    map[uuid.UUID]*user.User

	lastLoginIP string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error { return nil }

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, _ uuid.UUID, ip string) error {
	f.lastLoginIP = ip
	return nil
}

func (f *fakeUserRepo) SetBanned(_ context.Context, id uuid.UUID, banned bool) error {
	if u := f.byID[id]; u != nil {
		u.IsBanned = banned
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]*user.User, int, error) {
	return nil, 0, nil
}

func newTestService(repo user.Repository) *Service {
	jwtService := jwt.NewService("test-secret", 15*time.Minute, 7*24*time.Hour)
	return NewService(repo, jwtService, nil)
}

func seedUser(repo *fakeUserRepo, email, plain string, role user.Role) *user.User {
	hash, _ := password.Hash(plain)
	u := &user.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	repo.byEmail[u.Email] = u
	repo.byID[u.ID] = u
	return u
}

func TestRegisterNormalizesEmailAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Priya",
		Email:    "  Priya@Example.COM ",
		Password: "secret-pass",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if resp.User.Email != "priya@example.com" {
		t.Errorf("email = %q, want normalized lowercase", resp.User.Email)
	}
	if resp.User.Role != string(user.RoleCustomer) {
		t.Errorf("role = %q, want default %q", resp.User.Role, user.RoleCustomer)
	}
	if resp.Tokens.AccessToken == "" || resp.Tokens.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}

	stored := repo.byEmail["priya@example.com"]
	if stored == nil {
		t.Fatal("user not persisted under normalized email")
	}
	if stored.PasswordHash == "secret-pass" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	seedUser(repo, "taken@example.com", "pw1234567", user.RoleCustomer)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Second",
		Email:    "TAKEN@example.com",
		Password: "another-pass",
	})
	if err != ErrEmailAlreadyExists {
		t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Sneaky",
		Email:    "sneaky@example.com",
		Password: "secret-pass",
		Role:     string(user.RoleAdmin),
	})
	if err != ErrInvalidRole {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	seedUser(repo, "owner@example.com", "correct-pass", user.RoleOrganizer)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "Owner@Example.com",
		Password: "correct-pass",
	}, "203.0.113.7")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.Role != string(user.RoleOrganizer) {
		t.Errorf("role = %q, want organizer", resp.User.Role)
	}
	if repo.lastLoginIP != "203.0.113.7" {
		t.Errorf("lastLoginIP = %q, want recorded", repo.lastLoginIP)
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-pass",
	}, ""); err != ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-pass",
	}, ""); err != ErrInvalidCredentials {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRejectsBannedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	u := seedUser(repo, "banned@example.com", "correct-pass", user.RoleCustomer)
	u.IsBanned = true

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "banned@example.com",
		Password: "correct-pass",
	}, "")
	if err != ErrUserBanned {
		t.Errorf("err = %v, want ErrUserBanned", err)
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	seedUser(repo, "owner@example.com", "correct-pass", user.RoleOrganizer)

	login, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-pass",
	}, "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), login.Tokens.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.Tokens.AccessToken == "" {
		t.Error("expected a new access token")
	}
	if refreshed.User.Email != "owner@example.com" {
		t.Errorf("user email = %q after refresh", refreshed.User.Email)
	}

	if _, err := svc.Refresh(context.Background(), ""); err != ErrRefreshTokenRequired {
		t.Errorf("empty token: err = %v, want ErrRefreshTokenRequired", err)
	}
	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); err != ErrInvalidRefreshToken {
		t.Errorf("garbage token: err = %v, want ErrInvalidRefreshToken", err)
	}
}

func TestGetCurrentUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)
	u := seedUser(repo, "me@example.com", "correct-pass", user.RoleCustomer)

	resp, err := svc.GetCurrentUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("GetCurrentUser: %v", err)
	}
	if resp.Email != "me@example.com" {
		t.Errorf("email = %q", resp.Email)
	}

	if _, err := svc.GetCurrentUser(context.Background(), uuid.New()); err != ErrUserNotFound {
		t.Errorf("unknown id: err = %v, want ErrUserNotFound", err)
	}
}
