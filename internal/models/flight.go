package models

import (
	"strings"

	"github.com/mmynk/flightlog/internal/calculator"
)

// FlightType distinguishes instructional flights from solo flights.
type FlightType string

const (
	FlightTypeDual FlightType = "dual"
	FlightTypeSolo FlightType = "solo"
)

// Valid reports whether t is a known flight type.
func (t FlightType) Valid() bool {
	return t == FlightTypeDual || t == FlightTypeSolo
}

// Label is the capitalised form used in exports.
func (t FlightType) Label() string {
	if t == FlightTypeSolo {
		return "Solo"
	}
	return "Dual"
}

// LandingType records whether landings were made by day or by night.
type LandingType string

const (
	LandingTypeDay   LandingType = "day"
	LandingTypeNight LandingType = "night"
)

// Valid reports whether t is a known landing type.
func (t LandingType) Valid() bool {
	return t == LandingTypeDay || t == LandingTypeNight
}

// Label is the capitalised form used in exports.
func (t LandingType) Label() string {
	if t == LandingTypeNight {
		return "Night"
	}
	return "Day"
}

// FlightEntry is a single logged training flight.
type FlightEntry struct {
	// ID is the store-issued identifier (UUID format).
	ID string

	// Date is the calendar date of the flight (YYYY-MM-DD).
	Date string

	// DateEpoch is Date at UTC midnight in nanoseconds since the Unix epoch.
	// It is derived from Date and exists for display and sorting only.
	DateEpoch int64

	Student    string
	Instructor string
	Aircraft   string
	Exercise   string

	FlightType FlightType

	// TakeoffTime and LandingTime are 24-hour clock readings (H:MM or HH:MM).
	TakeoffTime string
	LandingTime string

	// TotalFlightTime is the H:MM duration between takeoff and landing.
	// It is derived and persisted redundantly.
	TotalFlightTime string

	LandingType  LandingType
	LandingCount int64

	// CreatedBy is the ID of the user who logged the flight.
	CreatedBy string

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// Normalize trims free-text fields and recomputes the derived fields
// TotalFlightTime and DateEpoch from the entry's own inputs.
func (e *FlightEntry) Normalize() {
	e.Date = strings.TrimSpace(e.Date)
	e.Student = strings.TrimSpace(e.Student)
	e.Instructor = strings.TrimSpace(e.Instructor)
	e.Aircraft = strings.TrimSpace(e.Aircraft)
	e.Exercise = strings.TrimSpace(e.Exercise)
	e.TakeoffTime = strings.TrimSpace(e.TakeoffTime)
	e.LandingTime = strings.TrimSpace(e.LandingTime)

	e.TotalFlightTime = calculator.FlightTime(e.TakeoffTime, e.LandingTime)
	if epoch, err := calculator.DateToEpoch(e.Date); err == nil {
		e.DateEpoch = epoch
	} else {
		e.DateEpoch = 0
	}
}

// Validate checks the user-supplied fields. It returns a *ValidationError
// for the first problem found, in form order.
func (e *FlightEntry) Validate() error {
	switch {
	case e.Date == "":
		return newValidationError("date", "is required")
	case !calculator.ValidDate(e.Date):
		return newValidationError("date", "must be YYYY-MM-DD")
	case e.Student == "":
		return newValidationError("student", "is required")
	case e.Instructor == "":
		return newValidationError("instructor", "is required")
	case e.Aircraft == "":
		return newValidationError("aircraft", "is required")
	case e.Exercise == "":
		return newValidationError("exercise", "is required")
	case !e.FlightType.Valid():
		return newValidationError("flightType", "must be dual or solo")
	case e.TakeoffTime == "":
		return newValidationError("takeoffTime", "is required")
	case e.LandingTime == "":
		return newValidationError("landingTime", "is required")
	}

	for _, f := range []struct{ field, value string }{
		{"student", e.Student},
		{"instructor", e.Instructor},
		{"aircraft", e.Aircraft},
		{"exercise", e.Exercise},
	} {
		if !printable(f.value) {
			return newValidationError(f.field, "must not contain control characters")
		}
	}

	if _, err := calculator.ParseClock(e.TakeoffTime); err != nil {
		return newValidationError("takeoffTime", "must be HH:MM")
	}
	if _, err := calculator.ParseClock(e.LandingTime); err != nil {
		return newValidationError("landingTime", "must be HH:MM")
	}
	if !e.LandingType.Valid() {
		return newValidationError("landingType", "must be day or night")
	}
	if e.LandingCount < 1 {
		return newValidationError("landingCount", "must be at least 1")
	}
	return nil
}

// Flight converts the entry to the aggregator's input shape.
func (e *FlightEntry) Flight() calculator.Flight {
	return calculator.Flight{
		Date:            e.Date,
		Student:         e.Student,
		Aircraft:        e.Aircraft,
		TotalFlightTime: e.TotalFlightTime,
	}
}

// Flights converts a slice of entries for aggregation.
func Flights(entries []*FlightEntry) []calculator.Flight {
	flights := make([]calculator.Flight, len(entries))
	for i, e := range entries {
		flights[i] = e.Flight()
	}
	return flights
}

// FlightFilter narrows a flight entry listing. Empty fields do not filter.
type FlightFilter struct {
	// Month matches entries whose date starts with YYYY-MM.
	Month string

	// Student matches entries for exactly this student name.
	Student string

	// Date matches entries on exactly this day (YYYY-MM-DD).
	Date string
}
