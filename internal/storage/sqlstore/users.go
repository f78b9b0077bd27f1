package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
)

var userColumns = []string{"id", "email", "password_hash", "role", "created_at", "updated_at"}

// CreateUser inserts a new user into the database.
func (s *SQLStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.insertUser(ctx, s.db, user)
}

// RegisterUser inserts user, making it admin when the table is empty. The
// count and the insert run in one transaction; on Postgres the table lock
// keeps a concurrent registration from also seeing zero users, and SQLite
// allows a single writer.
func (s *SQLStore) RegisterUser(ctx context.Context, user *models.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if s.driver == DriverPostgres {
		if _, err := tx.ExecContext(ctx, "LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE"); err != nil {
			return fmt.Errorf("failed to lock users: %w", err)
		}
	}

	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if n == 0 {
		user.Role = models.RoleAdmin
	}

	if err := s.insertUser(ctx, tx, user); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) insertUser(ctx context.Context, runner sq.ExecerContext, user *models.User) error {
	insert := s.sb.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt).
		Suffix("ON CONFLICT (email) DO NOTHING")

	n, err := s.exec(ctx, runner, insert)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", user.Email, storage.ErrAlreadyExists)
	}
	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, sq.Eq{"email": email})
}

// GetUserByID retrieves a user by their ID.
func (s *SQLStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, sq.Eq{"id": id})
}

func (s *SQLStore) getUser(ctx context.Context, where sq.Eq) (*models.User, error) {
	query, args, err := s.sb.Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	user := &models.User{}
	var role string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	user.Role = models.Role(role)

	return user, nil
}

// CountUsers returns the number of registered users.
func (s *SQLStore) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// UpdateUserRole changes the role of an existing user.
func (s *SQLStore) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	update := s.sb.Update("users").
		Set("role", string(role)).
		Set("updated_at", time.Now().Unix()).
		Where(sq.Eq{"id": id})

	n, err := s.exec(ctx, s.db, update)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, storage.ErrNotFound)
	}
	return nil
}
