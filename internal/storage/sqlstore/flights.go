package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
)

var flightColumns = []string{
	"id", "flight_date", "date_epoch",
	"student", "instructor", "aircraft", "exercise",
	"flight_type", "takeoff_time", "landing_time", "total_flight_time",
	"landing_type", "landing_count",
	"created_by", "created_at", "updated_at",
}

// CreateFlightEntry persists a new flight entry.
func (s *SQLStore) CreateFlightEntry(ctx context.Context, entry *models.FlightEntry) error {
	// Generate ID if not set
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if entry.CreatedAt == 0 {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	insert := s.sb.Insert("flight_entries").
		Columns(flightColumns...).
		Values(
			entry.ID, entry.Date, entry.DateEpoch,
			entry.Student, entry.Instructor, entry.Aircraft, entry.Exercise,
			string(entry.FlightType), entry.TakeoffTime, entry.LandingTime, entry.TotalFlightTime,
			string(entry.LandingType), entry.LandingCount,
			entry.CreatedBy, entry.CreatedAt, entry.UpdatedAt,
		)

	if _, err := s.exec(ctx, s.db, insert); err != nil {
		return fmt.Errorf("failed to insert flight entry: %w", err)
	}
	return nil
}

// GetFlightEntry retrieves a flight entry by ID.
func (s *SQLStore) GetFlightEntry(ctx context.Context, id string) (*models.FlightEntry, error) {
	query, args, err := s.sb.Select(flightColumns...).
		From("flight_entries").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	entry, err := scanFlightEntry(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("flight entry %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get flight entry: %w", err)
	}
	return entry, nil
}

// ListFlightEntries returns entries matching filter, newest flight first.
func (s *SQLStore) ListFlightEntries(ctx context.Context, filter models.FlightFilter) ([]*models.FlightEntry, error) {
	q := s.sb.Select(flightColumns...).
		From("flight_entries").
		OrderBy("date_epoch DESC", "created_at DESC", "id")

	if filter.Month != "" {
		q = q.Where(sq.Like{"flight_date": filter.Month + "-%"})
	}
	if filter.Date != "" {
		q = q.Where(sq.Eq{"flight_date": filter.Date})
	}
	if filter.Student != "" {
		q = q.Where(sq.Eq{"student": filter.Student})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list flight entries: %w", err)
	}
	defer rows.Close()

	entries := []*models.FlightEntry{}
	for rows.Next() {
		entry, err := scanFlightEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate flight entries: %w", err)
	}

	return entries, nil
}

// UpdateFlightEntry replaces every user-editable field of an existing entry.
func (s *SQLStore) UpdateFlightEntry(ctx context.Context, entry *models.FlightEntry) error {
	entry.UpdatedAt = time.Now().Unix()

	update := s.sb.Update("flight_entries").
		SetMap(map[string]interface{}{
			"flight_date":       entry.Date,
			"date_epoch":        entry.DateEpoch,
			"student":           entry.Student,
			"instructor":        entry.Instructor,
			"aircraft":          entry.Aircraft,
			"exercise":          entry.Exercise,
			"flight_type":       string(entry.FlightType),
			"takeoff_time":      entry.TakeoffTime,
			"landing_time":      entry.LandingTime,
			"total_flight_time": entry.TotalFlightTime,
			"landing_type":      string(entry.LandingType),
			"landing_count":     entry.LandingCount,
			"updated_at":        entry.UpdatedAt,
		}).
		Where(sq.Eq{"id": entry.ID})

	n, err := s.exec(ctx, s.db, update)
	if err != nil {
		return fmt.Errorf("failed to update flight entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("flight entry %s: %w", entry.ID, storage.ErrNotFound)
	}
	return nil
}

// DeleteFlightEntry removes a flight entry by ID.
func (s *SQLStore) DeleteFlightEntry(ctx context.Context, id string) error {
	n, err := s.exec(ctx, s.db, s.sb.Delete("flight_entries").Where(sq.Eq{"id": id}))
	if err != nil {
		return fmt.Errorf("failed to delete flight entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("flight entry %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlightEntry(row rowScanner) (*models.FlightEntry, error) {
	e := &models.FlightEntry{}
	var flightType, landingType string
	err := row.Scan(
		&e.ID, &e.Date, &e.DateEpoch,
		&e.Student, &e.Instructor, &e.Aircraft, &e.Exercise,
		&flightType, &e.TakeoffTime, &e.LandingTime, &e.TotalFlightTime,
		&landingType, &e.LandingCount,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.FlightType = models.FlightType(flightType)
	e.LandingType = models.LandingType(landingType)
	return e, nil
}
