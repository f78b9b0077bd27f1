package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mmynk/flightlog/internal/models"
)

// SaveProfile creates or replaces a user's profile.
func (s *SQLStore) SaveProfile(ctx context.Context, userID string, profile *models.UserProfile) error {
	upsert := s.sb.Insert("profiles").
		Columns("user_id", "name", "updated_at").
		Values(userID, profile.Name, time.Now().Unix()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at")

	if _, err := s.exec(ctx, s.db, upsert); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// GetProfile retrieves a user's profile. A user without a profile yields nil, nil.
func (s *SQLStore) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	query, args, err := s.sb.Select("name").From("profiles").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	profile := &models.UserProfile{}
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&profile.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // Profile not set up yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}
