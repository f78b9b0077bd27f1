package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/internal/calculator"
	"github.com/mmynk/flightlog/internal/middleware"
	"github.com/mmynk/flightlog/internal/models"
	"github.com/mmynk/flightlog/internal/storage"
	"github.com/mmynk/flightlog/pkg/api"
)

// FlightService implements the Connect FlightService
type FlightService struct {
	store storage.FlightStore
}

// NewFlightService creates a new FlightService with the given storage backend.
func NewFlightService(store storage.FlightStore) *FlightService {
	return &FlightService{store: store}
}

// prepareEntry recomputes derived fields and validates the entry before
// it is persisted.
func prepareEntry(wire *api.FlightEntry) (*models.FlightEntry, error) {
	if wire == nil {
		return nil, &models.ValidationError{Field: "entry", Reason: "is required"}
	}
	entry := wire.Model()
	entry.Normalize()
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func requireID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", &models.ValidationError{Field: "id", Reason: "is required"}
	}
	return id, nil
}

// AddFlightEntry persists a new entry and returns it with its ID.
func (s *FlightService) AddFlightEntry(ctx context.Context, req *connect.Request[api.AddFlightEntryRequest]) (*connect.Response[api.AddFlightEntryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}

	entry, err := prepareEntry(req.Msg.Entry)
	if err != nil {
		return nil, connectError(err)
	}
	entry.ID = ""
	entry.CreatedAt = 0
	entry.CreatedBy = middleware.GetUserID(ctx)

	if err := s.store.CreateFlightEntry(ctx, entry); err != nil {
		slog.Error("AddFlightEntry failed", "error", err)
		return nil, connectError(err)
	}

	slog.Info("Flight entry added",
		"id", entry.ID,
		"date", entry.Date,
		"student", entry.Student,
		"total", entry.TotalFlightTime,
	)
	return connect.NewResponse(&api.AddFlightEntryResponse{Entry: api.FlightEntryFromModel(entry)}), nil
}

// GetFlightEntries lists entries, newest first, optionally narrowed by
// month (YYYY-MM) and exact student name.
func (s *FlightService) GetFlightEntries(ctx context.Context, req *connect.Request[api.GetFlightEntriesRequest]) (*connect.Response[api.GetFlightEntriesResponse], error) {
	if err := requireCaller(middleware.GetUserID(ctx)); err != nil {
		return nil, err
	}

	filter := models.FlightFilter{
		Month:   strings.TrimSpace(req.Msg.FilterMonth),
		Student: strings.TrimSpace(req.Msg.FilterStudent),
	}
	if filter.Month != "" && !calculator.ValidMonth(filter.Month) {
		return nil, connectError(&models.ValidationError{Field: "filterMonth", Reason: "must be YYYY-MM"})
	}

	entries, err := s.store.ListFlightEntries(ctx, filter)
	if err != nil {
		slog.Error("GetFlightEntries failed", "error", err)
		return nil, connectError(err)
	}

	slog.Debug("Listed flight entries", "month", filter.Month, "student", filter.Student, "count", len(entries))
	return connect.NewResponse(&api.GetFlightEntriesResponse{Entries: api.FlightEntriesFromModels(entries)}), nil
}

func (s *FlightService) GetFlightEntry(ctx context.Context, req *connect.Request[api.GetFlightEntryRequest]) (*connect.Response[api.GetFlightEntryResponse], error) {
	if err := requireCaller(middleware.GetUserID(ctx)); err != nil {
		return nil, err
	}
	id, err := requireID(req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	entry, err := s.store.GetFlightEntry(ctx, id)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&api.GetFlightEntryResponse{Entry: api.FlightEntryFromModel(entry)}), nil
}

// UpdateFlightEntry replaces the user-editable fields of an existing entry.
// Authorship and creation time are kept.
func (s *FlightService) UpdateFlightEntry(ctx context.Context, req *connect.Request[api.UpdateFlightEntryRequest]) (*connect.Response[api.UpdateFlightEntryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}
	id, err := requireID(req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	entry, err := prepareEntry(req.Msg.Entry)
	if err != nil {
		return nil, connectError(err)
	}

	existing, err := s.store.GetFlightEntry(ctx, id)
	if err != nil {
		slog.Warn("UpdateFlightEntry: entry not found", "id", id, "error", err)
		return nil, connectError(err)
	}
	entry.ID = existing.ID
	entry.CreatedBy = existing.CreatedBy
	entry.CreatedAt = existing.CreatedAt

	if err := s.store.UpdateFlightEntry(ctx, entry); err != nil {
		slog.Error("UpdateFlightEntry failed", "id", id, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Flight entry updated", "id", id, "total", entry.TotalFlightTime)
	return connect.NewResponse(&api.UpdateFlightEntryResponse{Entry: api.FlightEntryFromModel(entry)}), nil
}

func (s *FlightService) DeleteFlightEntry(ctx context.Context, req *connect.Request[api.DeleteFlightEntryRequest]) (*connect.Response[api.DeleteFlightEntryResponse], error) {
	if err := middleware.RequireWriter(ctx); err != nil {
		return nil, err
	}
	id, err := requireID(req.Msg.ID)
	if err != nil {
		return nil, connectError(err)
	}

	if err := s.store.DeleteFlightEntry(ctx, id); err != nil {
		slog.Warn("DeleteFlightEntry failed", "id", id, "error", err)
		return nil, connectError(err)
	}

	slog.Info("Flight entry deleted", "id", id)
	return connect.NewResponse(&api.DeleteFlightEntryResponse{}), nil
}

// flights loads the entries matching filter in aggregator form.
func (s *FlightService) flights(ctx context.Context, filter models.FlightFilter) ([]calculator.Flight, error) {
	if err := requireCaller(middleware.GetUserID(ctx)); err != nil {
		return nil, err
	}
	entries, err := s.store.ListFlightEntries(ctx, filter)
	if err != nil {
		slog.Error("Loading flights for aggregation failed", "error", err)
		return nil, connectError(err)
	}
	return models.Flights(entries), nil
}

// GetTotalHoursByAircraft sums logged time per aircraft, largest first.
func (s *FlightService) GetTotalHoursByAircraft(ctx context.Context, req *connect.Request[api.GetTotalHoursByAircraftRequest]) (*connect.Response[api.GetTotalHoursByAircraftResponse], error) {
	flights, err := s.flights(ctx, models.FlightFilter{})
	if err != nil {
		return nil, err
	}

	totals := calculator.HoursByAircraft(flights)
	summaries := make([]*api.AircraftSummary, len(totals))
	for i, t := range totals {
		summaries[i] = &api.AircraftSummary{Aircraft: t.Name, TotalHours: t.Hours}
	}
	return connect.NewResponse(&api.GetTotalHoursByAircraftResponse{Summaries: summaries}), nil
}

// GetTotalHoursByStudent sums logged time per student, largest first.
func (s *FlightService) GetTotalHoursByStudent(ctx context.Context, req *connect.Request[api.GetTotalHoursByStudentRequest]) (*connect.Response[api.GetTotalHoursByStudentResponse], error) {
	flights, err := s.flights(ctx, models.FlightFilter{})
	if err != nil {
		return nil, err
	}

	totals := calculator.HoursByStudent(flights)
	out := make([]*api.StudentTotalHours, len(totals))
	for i, t := range totals {
		out[i] = &api.StudentTotalHours{Student: t.Name, TotalHours: t.Hours}
	}
	return connect.NewResponse(&api.GetTotalHoursByStudentResponse{Totals: out}), nil
}

func (s *FlightService) GetDailyHours(ctx context.Context, req *connect.Request[api.GetDailyHoursRequest]) (*connect.Response[api.GetDailyHoursResponse], error) {
	day := strings.TrimSpace(req.Msg.Day)
	if !calculator.ValidDate(day) {
		return nil, connectError(&models.ValidationError{Field: "day", Reason: "must be YYYY-MM-DD"})
	}

	flights, err := s.flights(ctx, models.FlightFilter{Date: day})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetDailyHoursResponse{Hours: calculator.DailyHours(flights, day)}), nil
}

func (s *FlightService) GetMonthlyHours(ctx context.Context, req *connect.Request[api.GetMonthlyHoursRequest]) (*connect.Response[api.GetMonthlyHoursResponse], error) {
	month := strings.TrimSpace(req.Msg.Month)
	if !calculator.ValidMonth(month) {
		return nil, connectError(&models.ValidationError{Field: "month", Reason: "must be YYYY-MM"})
	}

	flights, err := s.flights(ctx, models.FlightFilter{Month: month})
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetMonthlyHoursResponse{Hours: calculator.MonthlyHours(flights, month)}), nil
}
