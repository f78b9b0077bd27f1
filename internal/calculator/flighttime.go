package calculator

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// InvalidDuration is returned by FlightTime when either clock reading is malformed.
const InvalidDuration = "0:00"

const minutesPerDay = 24 * 60

var (
	ErrInvalidClock    = errors.New("time must be H:MM or HH:MM (00:00-23:59)")
	ErrInvalidDuration = errors.New("duration must be H:MM")
)

var (
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	durationPattern = regexp.MustCompile(`^(\d+):(\d{2})$`)
)

// ParseClock converts a 24-hour H:MM or HH:MM reading into minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return hours*60 + minutes, nil
}

// FlightTime returns the elapsed time between takeoff and landing as H:MM.
//
// A landing earlier in the day than the takeoff is treated as the next day,
// so "23:30" to "00:15" is "0:45". Malformed input yields InvalidDuration.
func FlightTime(takeoff, landing string) string {
	minutes, err := FlightMinutes(takeoff, landing)
	if err != nil {
		return InvalidDuration
	}
	return FormatMinutes(minutes)
}

// FlightMinutes is FlightTime in whole minutes, reporting malformed input as an error.
func FlightMinutes(takeoff, landing string) (int, error) {
	from, err := ParseClock(takeoff)
	if err != nil {
		return 0, fmt.Errorf("takeoff: %w", err)
	}
	to, err := ParseClock(landing)
	if err != nil {
		return 0, fmt.Errorf("landing: %w", err)
	}

	elapsed := to - from
	if elapsed < 0 {
		elapsed += minutesPerDay
	}
	return elapsed, nil
}

// FormatMinutes renders a minute count as H:MM.
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// DurationMinutes parses a stored H:MM duration back into minutes.
// Unlike ParseClock the hour part is unbounded.
func DurationMinutes(s string) (int, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	minutes, _ := strconv.Atoi(m[2])
	if minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return hours*60 + minutes, nil
}
