package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() *FlightEntry {
	return &FlightEntry{
		Date:         "2025-06-01",
		Student:      "Alice",
		Instructor:   "Bob",
		Aircraft:     "OK-ABC",
		Exercise:     "Circuits",
		FlightType:   FlightTypeDual,
		TakeoffTime:  "9:15",
		LandingTime:  "10:00",
		LandingType:  LandingTypeDay,
		LandingCount: 3,
	}
}

func TestFlightEntry_NormalizeRecomputesDerivedFields(t *testing.T) {
	e := validEntry()
	e.Student = "  Alice  "
	e.TotalFlightTime = "9:99"
	e.DateEpoch = 42

	e.Normalize()

	assert.Equal(t, "Alice", e.Student)
	assert.Equal(t, "0:45", e.TotalFlightTime)
	assert.Equal(t, int64(1748736000000)*1_000_000, e.DateEpoch)
}

func TestFlightEntry_NormalizeInvalidInputs(t *testing.T) {
	e := validEntry()
	e.Date = "not-a-date"
	e.LandingTime = "25:00"

	e.Normalize()

	assert.Equal(t, "0:00", e.TotalFlightTime)
	assert.Zero(t, e.DateEpoch)
}

func TestFlightEntry_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *FlightEntry)
		field  string
	}{
		{"missing date", func(e *FlightEntry) { e.Date = "" }, "date"},
		{"bad date", func(e *FlightEntry) { e.Date = "2025-02-30" }, "date"},
		{"missing student", func(e *FlightEntry) { e.Student = "" }, "student"},
		{"missing instructor", func(e *FlightEntry) { e.Instructor = "" }, "instructor"},
		{"missing aircraft", func(e *FlightEntry) { e.Aircraft = "" }, "aircraft"},
		{"date beyond epoch range", func(e *FlightEntry) { e.Date = "9999-12-31" }, "date"},
		{"missing exercise", func(e *FlightEntry) { e.Exercise = "" }, "exercise"},
		{"control character in student", func(e *FlightEntry) { e.Student = "Ann\x0bSmith" }, "student"},
		{"invalid utf-8 in instructor", func(e *FlightEntry) { e.Instructor = "Bad\xffName" }, "instructor"},
		{"nul in aircraft", func(e *FlightEntry) { e.Aircraft = "OK\x00ABC" }, "aircraft"},
		{"escape in exercise", func(e *FlightEntry) { e.Exercise = "Stalls\x1b[0m" }, "exercise"},
		{"bad flight type", func(e *FlightEntry) { e.FlightType = "tandem" }, "flightType"},
		{"missing takeoff", func(e *FlightEntry) { e.TakeoffTime = "" }, "takeoffTime"},
		{"malformed takeoff", func(e *FlightEntry) { e.TakeoffTime = "9:5" }, "takeoffTime"},
		{"malformed landing", func(e *FlightEntry) { e.LandingTime = "24:00" }, "landingTime"},
		{"bad landing type", func(e *FlightEntry) { e.LandingType = "dusk" }, "landingType"},
		{"zero landings", func(e *FlightEntry) { e.LandingCount = 0 }, "landingCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEntry()
			tt.mutate(e)

			err := e.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, validEntry().Validate())
}

func TestParseCategoryType(t *testing.T) {
	for _, s := range []string{"student", "Instructor", " aircraft ", "EXERCISE"} {
		_, err := ParseCategoryType(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseCategoryType("pilot")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCategoryName(t *testing.T) {
	name, err := CategoryName("  Cessna 152 ")
	require.NoError(t, err)
	assert.Equal(t, "Cessna 152", name)

	_, err = CategoryName("   ")
	assert.ErrorIs(t, err, ErrValidation)

	for _, bad := range []string{"Ann\x0bSmith", "Bad\xffUTF8", "Tab\tName"} {
		_, err = CategoryName(bad)
		assert.ErrorIs(t, err, ErrValidation, "%q", bad)
	}
	name, err = CategoryName("Zoë & Co")
	require.NoError(t, err)
	assert.Equal(t, "Zoë & Co", name)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.CanWrite())
	assert.True(t, RoleUser.CanWrite())
	assert.False(t, RoleGuest.CanWrite())
	assert.False(t, Role("root").Valid())
}
