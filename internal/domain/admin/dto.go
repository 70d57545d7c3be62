package admin

import (
	"time"

	"github.com/google/uuid"

	"github.com/bookmyspot/bookmyspot-api/internal/domain/user"
)

// BanRequest for POST /admin/users/{id}/ban
type BanRequest struct {
	Banned bool `json:"banned"`
}

// UserResponse represents a user in admin API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Role        string     `json:"role"`
	IsBanned    bool       `json:"is_banned"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UserResponseFromEntity converts entity to admin API response
func UserResponseFromEntity(u *user.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
	if u.Phone.Valid {
		resp.Phone = u.Phone.String
	}
	if u.LastLoginAt.Valid {
		t := u.LastLoginAt.Time
		resp.LastLoginAt = &t
	}
	return resp
}
