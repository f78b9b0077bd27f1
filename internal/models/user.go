package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is a coarse permission flag attached to a user.
type Role string

const (
	// RoleAdmin can do everything, including assigning roles.
	RoleAdmin Role = "admin"
	// RoleUser can read and modify the flight log.
	RoleUser Role = "user"
	// RoleGuest can only read.
	RoleGuest Role = "guest"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

// CanWrite reports whether the role may modify flight entries and categories.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered account. It is the caller identity that
// profiles and flight entries are attributed to.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the login name (unique).
	Email string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// Role controls what the user may do.
	Role Role

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// NewUser creates a user with a fresh ID and timestamps.
func NewUser(email, passwordHash string, role Role) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UserProfile is the display name chosen by a user on first login.
type UserProfile struct {
	Name string
}
