package calculator

import (
	"errors"
	"strings"
	"testing"
)

func TestFlightTime(t *testing.T) {
	tests := []struct {
		name    string
		takeoff string
		landing string
		want    string
	}{
		{name: "same day", takeoff: "09:00", landing: "10:30", want: "1:30"},
		{name: "single digit hour", takeoff: "9:05", landing: "9:50", want: "0:45"},
		{name: "equal times", takeoff: "09:00", landing: "09:00", want: "0:00"},
		{name: "midnight crossing", takeoff: "23:30", landing: "00:15", want: "0:45"},
		{name: "landing one minute earlier", takeoff: "12:00", landing: "11:59", want: "23:59"},
		{name: "long flight", takeoff: "00:00", landing: "23:59", want: "23:59"},
		{name: "single digit minute", takeoff: "9:5", landing: "10:00", want: InvalidDuration},
		{name: "hour out of range", takeoff: "25:00", landing: "10:00", want: InvalidDuration},
		{name: "minute out of range", takeoff: "10:00", landing: "10:60", want: InvalidDuration},
		{name: "empty takeoff", takeoff: "", landing: "10:00", want: InvalidDuration},
		{name: "empty landing", takeoff: "10:00", landing: "", want: InvalidDuration},
		{name: "three digit hour", takeoff: "100:00", landing: "10:00", want: InvalidDuration},
		{name: "trailing garbage", takeoff: "10:00am", landing: "11:00", want: InvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FlightTime(tt.takeoff, tt.landing); got != tt.want {
				t.Errorf("FlightTime(%q, %q) = %q, want %q", tt.takeoff, tt.landing, got, tt.want)
			}
		})
	}
}

func TestFlightMinutes_SameDayMatchesDifference(t *testing.T) {
	for takeoff := 0; takeoff < minutesPerDay; takeoff += 37 {
		for landing := takeoff; landing < minutesPerDay; landing += 53 {
			got, err := FlightMinutes(FormatMinutes(takeoff), FormatMinutes(landing))
			if err != nil {
				t.Fatalf("FlightMinutes(%d, %d) error: %v", takeoff, landing, err)
			}
			if got != landing-takeoff {
				t.Fatalf("FlightMinutes(%d, %d) = %d, want %d", takeoff, landing, got, landing-takeoff)
			}
		}
	}
}

func TestFlightMinutes_ReportsWhichSideIsInvalid(t *testing.T) {
	_, err := FlightMinutes("24:00", "10:00")
	if !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock, got %v", err)
	}
	if got := err.Error(); !strings.HasPrefix(got, "takeoff") {
		t.Errorf("error %q should name the takeoff field", got)
	}
}

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1:30", want: 90},
		{in: "0:45", want: 45},
		{in: "0:00", want: 0},
		{in: "125:05", want: 125*60 + 5},
		{in: "1:5", wantErr: true},
		{in: "1:75", wantErr: true},
		{in: "", wantErr: true},
		{in: "-1:00", wantErr: true},
	}

	for _, tt := range tests {
		got, err := DurationMinutes(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("DurationMinutes(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("DurationMinutes(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DurationMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
