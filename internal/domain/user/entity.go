package user

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Role represents user role in the system (matches user_role enum)
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// User represents a user account (matches users table)
type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        sql.NullString `db:"phone"`
	Role         Role      `db:"role"`
	IsBanned     bool      `db:"is_banned"`

	// Login tracking
	LastLoginAt sql.NullTime   `db:"last_login_at"`
	LastLoginIP sql.NullString `db:"last_login_ip"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// IsCustomer returns true if user is a customer
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsOrganizer returns true if user is an organizer
func (u *User) IsOrganizer() bool {
	return u.Role == RoleOrganizer
}

// IsAdmin returns true if user is an admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanManageVenues returns true if user can create venues and events
func (u *User) CanManageVenues() bool {
	return u.IsOrganizer() || u.IsAdmin()
}

// ValidRoles returns list of valid roles for registration
func ValidRoles() []Role {
	return []Role{RoleCustomer, RoleOrganizer}
}

// IsValidRole checks if role is valid for registration
func IsValidRole(role string) bool {
	for _, r := range ValidRoles() {
		if string(r) == role {
			return true
		}
	}
	return false
}
