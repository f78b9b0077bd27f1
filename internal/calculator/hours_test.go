package calculator

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailyHours(t *testing.T) {
	flights := []Flight{
		{Date: "2025-06-01", TotalFlightTime: "1:30"},
		{Date: "2025-06-01", TotalFlightTime: "0:45"},
		{Date: "2025-06-02", TotalFlightTime: "2:00"},
	}

	if got := DailyHours(flights, "2025-06-01"); !approx(got, 2.25) {
		t.Errorf("DailyHours = %v, want 2.25", got)
	}
	if got := DailyHours(flights, "2025-06-03"); got != 0 {
		t.Errorf("DailyHours for empty day = %v, want 0", got)
	}
	if got := DailyHours(nil, "2025-06-01"); got != 0 {
		t.Errorf("DailyHours(nil) = %v, want 0", got)
	}
}

func TestMonthlyHours(t *testing.T) {
	flights := []Flight{
		{Date: "2025-06-01", TotalFlightTime: "1:30"},
		{Date: "2025-06-30", TotalFlightTime: "0:30"},
		{Date: "2025-07-01", TotalFlightTime: "5:00"},
		{Date: "2025-06-15", TotalFlightTime: "garbage"},
	}

	if got := MonthlyHours(flights, "2025-06"); !approx(got, 2.0) {
		t.Errorf("MonthlyHours = %v, want 2.0", got)
	}
	if got := MonthlyHours(flights, "2025-0"); got != 0 {
		t.Errorf("MonthlyHours with partial month = %v, want 0", got)
	}
}

func TestHoursByStudentAndAircraft(t *testing.T) {
	flights := []Flight{
		{Student: "Alice", Aircraft: "OK-ABC", TotalFlightTime: "1:00"},
		{Student: "Bob", Aircraft: "OK-ABC", TotalFlightTime: "2:30"},
		{Student: "Alice", Aircraft: "OK-XYZ", TotalFlightTime: "0:30"},
		{Student: "Carol", Aircraft: "OK-XYZ", TotalFlightTime: "1:30"},
	}

	students := HoursByStudent(flights)
	want := []Total{{"Bob", 2.5}, {"Alice", 1.5}, {"Carol", 1.5}}
	if len(students) != len(want) {
		t.Fatalf("HoursByStudent returned %d totals, want %d", len(students), len(want))
	}
	for i := range want {
		if students[i].Name != want[i].Name || !approx(students[i].Hours, want[i].Hours) {
			t.Errorf("HoursByStudent[%d] = %+v, want %+v", i, students[i], want[i])
		}
	}

	aircraft := HoursByAircraft(flights)
	if len(aircraft) != 2 {
		t.Fatalf("HoursByAircraft returned %d totals, want 2", len(aircraft))
	}
	if aircraft[0].Name != "OK-ABC" || !approx(aircraft[0].Hours, 3.5) {
		t.Errorf("HoursByAircraft[0] = %+v, want OK-ABC 3.5", aircraft[0])
	}
	if aircraft[1].Name != "OK-XYZ" || !approx(aircraft[1].Hours, 2.0) {
		t.Errorf("HoursByAircraft[1] = %+v, want OK-XYZ 2.0", aircraft[1])
	}

	if got := HoursByStudent(nil); len(got) != 0 {
		t.Errorf("HoursByStudent(nil) = %v, want empty", got)
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "0:00"},
		{2.25, "2:15"},
		{1.5, "1:30"},
		{0.999, "1:00"},
		{10.0 / 60, "0:10"},
		{-1, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatHours(tt.hours); got != tt.want {
			t.Errorf("FormatHours(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
