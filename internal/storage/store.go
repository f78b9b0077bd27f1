// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/flightlog/internal/models"
)

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a unique key is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the interface for flight log storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	ProfileStore
	CategoryStore
	FlightStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists registered accounts.
type UserStore interface {
	// CreateUser inserts a user. Returns ErrAlreadyExists if the email is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// RegisterUser inserts a user like CreateUser, except that the first
	// user ever stored gets RoleAdmin (user.Role is updated). Concurrent
	// calls never produce two first users.
	RegisterUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound if no user has this email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns ErrNotFound if no user has this ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int, error)

	// UpdateUserRole changes a user's role. Returns ErrNotFound for unknown users.
	UpdateUserRole(ctx context.Context, id string, role models.Role) error
}

// ProfileStore persists the display name of each user.
type ProfileStore interface {
	// SaveProfile creates or replaces the profile of userID.
	SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error

	// GetProfile returns nil and no error when the user has no profile yet.
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// CategoryStore persists the four reference lists.
type CategoryStore interface {
	// ListCategories returns the items of one list ordered by name.
	ListCategories(ctx context.Context, categoryType models.CategoryType) ([]*models.Category, error)

	// AddCategory returns ErrAlreadyExists if the name is taken within its type.
	AddCategory(ctx context.Context, category *models.Category) error

	// DeleteCategory returns ErrNotFound if the item does not exist.
	DeleteCategory(ctx context.Context, category *models.Category) error

	// RenameCategory replaces oldName with newName in a single transaction.
	// Either both steps happen or neither does.
	RenameCategory(ctx context.Context, categoryType models.CategoryType, oldName, newName string) error
}

// FlightStore persists flight entries.
type FlightStore interface {
	// CreateFlightEntry persists a new entry. The entry.ID, CreatedAt and
	// UpdatedAt fields are populated by the store.
	CreateFlightEntry(ctx context.Context, entry *models.FlightEntry) error

	// GetFlightEntry returns ErrNotFound if no entry has this ID.
	GetFlightEntry(ctx context.Context, id string) (*models.FlightEntry, error)

	// ListFlightEntries returns matching entries, newest flight first.
	ListFlightEntries(ctx context.Context, filter models.FlightFilter) ([]*models.FlightEntry, error)

	// UpdateFlightEntry replaces the entry with the same ID.
	// Returns ErrNotFound if the ID does not match a stored entry.
	UpdateFlightEntry(ctx context.Context, entry *models.FlightEntry) error

	// DeleteFlightEntry returns ErrNotFound if the ID does not match a stored entry.
	DeleteFlightEntry(ctx context.Context, id string) error
}
