package service

import (
	"context"
	"math"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/flightlog/pkg/api"
)

func addEntry(t *testing.T, c *clients, entry *api.FlightEntry) *api.FlightEntry {
	t.Helper()
	resp, err := c.Flight.AddFlightEntry(context.Background(), connect.NewRequest(&api.AddFlightEntryRequest{Entry: entry}))
	if err != nil {
		t.Fatalf("AddFlightEntry failed: %v", err)
	}
	return resp.Msg.Entry
}

func TestAddFlightEntry_ComputesDerivedFields(t *testing.T) {
	env := setupTestServer(t, nil)
	c := env.register("cfi@example.com")

	entry := sampleEntry()
	entry.TakeoffTime = "23:30"
	entry.LandingTime = "00:15"
	entry.TotalFlightTime = "9:99"
	entry.DateEpoch = 42

	got := addEntry(t, c, entry)
	if got.ID == "" {
		t.Error("expected an ID")
	}
	if got.TotalFlightTime != "0:45" {
		t.Errorf("expected total 0:45, got %s", got.TotalFlightTime)
	}
	if got.DateEpoch != 1748736000000*1_000_000 {
		t.Errorf("expected epoch of 2025-06-01, got %d", got.DateEpoch)
	}
	if got.CreatedBy != c.UserID {
		t.Errorf("expected createdBy %s, got %s", c.UserID, got.CreatedBy)
	}
}

func TestAddFlightEntry_Validation(t *testing.T) {
	env := setupTestServer(t, nil)
	c := env.register("cfi@example.com")

	tests := []struct {
		name   string
		mutate func(e *api.FlightEntry)
	}{
		{"missing student", func(e *api.FlightEntry) { e.Student = "" }},
		{"bad date", func(e *api.FlightEntry) { e.Date = "2025-13-01" }},
		{"bad takeoff", func(e *api.FlightEntry) { e.TakeoffTime = "25:00" }},
		{"bad flight type", func(e *api.FlightEntry) { e.FlightType = "formation" }},
		{"no landings", func(e *api.FlightEntry) { e.LandingCount = 0 }},
		{"control character in student", func(e *api.FlightEntry) { e.Student = "Ann\vSmith" }},
		{"date past year 2262", func(e *api.FlightEntry) { e.Date = "9999-12-31" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := sampleEntry()
			tt.mutate(entry)
			_, err := c.Flight.AddFlightEntry(context.Background(), connect.NewRequest(&api.AddFlightEntryRequest{Entry: entry}))
			assertCode(t, err, connect.CodeInvalidArgument)
		})
	}
}

func TestFlightEntry_CRUD(t *testing.T) {
	env := setupTestServer(t, nil)
	ctx := context.Background()
	c := env.register("cfi@example.com")

	created := addEntry(t, c, sampleEntry())

	got, err := c.Flight.GetFlightEntry(ctx, connect.NewRequest(&api.GetFlightEntryRequest{ID: created.ID}))
	if err != nil {
		t.Fatalf("GetFlightEntry failed: %v", err)
	}
	if got.Msg.Entry.TotalFlightTime != "1:30" {
		t.Errorf("expected 1:30, got %s", got.Msg.Entry.TotalFlightTime)
	}

	update := sampleEntry()
	update.LandingTime = "11:00"
	update.Student = "Carol"
	updated, err := c.Flight.UpdateFlightEntry(ctx, connect.NewRequest(&api.UpdateFlightEntryRequest{ID: created.ID, Entry: update}))
	if err != nil {
		t.Fatalf("UpdateFlightEntry failed: %v", err)
	}
	if updated.Msg.Entry.TotalFlightTime != "2:00" || updated.Msg.Entry.Student != "Carol" {
		t.Errorf("unexpected update result: %+v", updated.Msg.Entry)
	}
	if updated.Msg.Entry.CreatedBy != c.UserID || updated.Msg.Entry.CreatedAt != created.CreatedAt {
		t.Errorf("expected authorship to be kept: %+v", updated.Msg.Entry)
	}

	t.Run("update unknown id", func(t *testing.T) {
		_, err := c.Flight.UpdateFlightEntry(ctx, connect.NewRequest(&api.UpdateFlightEntryRequest{ID: "missing", Entry: sampleEntry()}))
		assertCode(t, err, connect.CodeNotFound)
	})

	if _, err := c.Flight.DeleteFlightEntry(ctx, connect.NewRequest(&api.DeleteFlightEntryRequest{ID: created.ID})); err != nil {
		t.Fatalf("DeleteFlightEntry failed: %v", err)
	}

	t.Run("get deleted", func(t *testing.T) {
		_, err := c.Flight.GetFlightEntry(ctx, connect.NewRequest(&api.GetFlightEntryRequest{ID: created.ID}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		_, err := c.Flight.DeleteFlightEntry(ctx, connect.NewRequest(&api.DeleteFlightEntryRequest{ID: created.ID}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := c.Flight.GetFlightEntry(ctx, connect.NewRequest(&api.GetFlightEntryRequest{}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})
}

func TestGetFlightEntries_Filters(t *testing.T) {
	env := setupTestServer(t, nil)
	ctx := context.Background()
	c := env.register("cfi@example.com")

	for _, e := range []struct{ date, student string }{
		{"2025-06-01", "Alice"},
		{"2025-06-15", "Bob"},
		{"2025-07-01", "Alice"},
	} {
		entry := sampleEntry()
		entry.Date, entry.Student = e.date, e.student
		addEntry(t, c, entry)
	}

	tests := []struct {
		name    string
		req     *api.GetFlightEntriesRequest
		wantLen int
	}{
		{"all", &api.GetFlightEntriesRequest{}, 3},
		{"month", &api.GetFlightEntriesRequest{FilterMonth: "2025-06"}, 2},
		{"student", &api.GetFlightEntriesRequest{FilterStudent: "Alice"}, 2},
		{"both", &api.GetFlightEntriesRequest{FilterMonth: "2025-06", FilterStudent: "Alice"}, 1},
		{"no match", &api.GetFlightEntriesRequest{FilterMonth: "2024-01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := c.Flight.GetFlightEntries(ctx, connect.NewRequest(tt.req))
			if err != nil {
				t.Fatalf("GetFlightEntries failed: %v", err)
			}
			if len(resp.Msg.Entries) != tt.wantLen {
				t.Errorf("expected %d entries, got %d", tt.wantLen, len(resp.Msg.Entries))
			}
		})
	}

	resp, err := c.Flight.GetFlightEntries(ctx, connect.NewRequest(&api.GetFlightEntriesRequest{}))
	if err != nil {
		t.Fatalf("GetFlightEntries failed: %v", err)
	}
	if resp.Msg.Entries[0].Date != "2025-07-01" {
		t.Errorf("expected newest first, got %s", resp.Msg.Entries[0].Date)
	}

	_, err = c.Flight.GetFlightEntries(ctx, connect.NewRequest(&api.GetFlightEntriesRequest{FilterMonth: "June"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestHoursReports(t *testing.T) {
	env := setupTestServer(t, nil)
	ctx := context.Background()
	c := env.register("cfi@example.com")

	for _, e := range []struct{ date, student, aircraft, takeoff, landing string }{
		{"2025-06-01", "Alice", "C172", "09:00", "10:30"}, // 1:30
		{"2025-06-01", "Bob", "PA28", "11:00", "11:45"},   // 0:45
		{"2025-06-20", "Alice", "C172", "23:30", "00:30"}, // 1:00
		{"2025-07-02", "Bob", "C172", "08:00", "08:30"},   // 0:30
	} {
		entry := sampleEntry()
		entry.Date, entry.Student, entry.Aircraft = e.date, e.student, e.aircraft
		entry.TakeoffTime, entry.LandingTime = e.takeoff, e.landing
		addEntry(t, c, entry)
	}

	daily, err := c.Flight.GetDailyHours(ctx, connect.NewRequest(&api.GetDailyHoursRequest{Day: "2025-06-01"}))
	if err != nil {
		t.Fatalf("GetDailyHours failed: %v", err)
	}
	if math.Abs(daily.Msg.Hours-2.25) > 1e-9 {
		t.Errorf("expected 2.25 daily hours, got %v", daily.Msg.Hours)
	}

	monthly, err := c.Flight.GetMonthlyHours(ctx, connect.NewRequest(&api.GetMonthlyHoursRequest{Month: "2025-06"}))
	if err != nil {
		t.Fatalf("GetMonthlyHours failed: %v", err)
	}
	if math.Abs(monthly.Msg.Hours-3.25) > 1e-9 {
		t.Errorf("expected 3.25 monthly hours, got %v", monthly.Msg.Hours)
	}

	empty, err := c.Flight.GetDailyHours(ctx, connect.NewRequest(&api.GetDailyHoursRequest{Day: "2024-01-01"}))
	if err != nil {
		t.Fatalf("GetDailyHours failed: %v", err)
	}
	if empty.Msg.Hours != 0 {
		t.Errorf("expected 0 hours, got %v", empty.Msg.Hours)
	}

	aircraft, err := c.Flight.GetTotalHoursByAircraft(ctx, connect.NewRequest(&api.GetTotalHoursByAircraftRequest{}))
	if err != nil {
		t.Fatalf("GetTotalHoursByAircraft failed: %v", err)
	}
	if len(aircraft.Msg.Summaries) != 2 || aircraft.Msg.Summaries[0].Aircraft != "C172" {
		t.Fatalf("unexpected aircraft summaries: %+v", aircraft.Msg.Summaries)
	}
	if math.Abs(aircraft.Msg.Summaries[0].TotalHours-3.0) > 1e-9 {
		t.Errorf("expected C172 3.0 hours, got %v", aircraft.Msg.Summaries[0].TotalHours)
	}

	students, err := c.Flight.GetTotalHoursByStudent(ctx, connect.NewRequest(&api.GetTotalHoursByStudentRequest{}))
	if err != nil {
		t.Fatalf("GetTotalHoursByStudent failed: %v", err)
	}
	if len(students.Msg.Totals) != 2 || students.Msg.Totals[0].Student != "Alice" {
		t.Fatalf("unexpected student totals: %+v", students.Msg.Totals)
	}
	if math.Abs(students.Msg.Totals[0].TotalHours-2.5) > 1e-9 || math.Abs(students.Msg.Totals[1].TotalHours-1.25) > 1e-9 {
		t.Errorf("unexpected student hours: %+v", students.Msg.Totals)
	}

	_, err = c.Flight.GetMonthlyHours(ctx, connect.NewRequest(&api.GetMonthlyHoursRequest{Month: "2025-6"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}
