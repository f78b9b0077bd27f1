package api

import (
	"strings"

	"github.com/mmynk/flightlog/internal/models"
)

// FlightEntryFromModel converts a stored entry to its wire form.
func FlightEntryFromModel(e *models.FlightEntry) *FlightEntry {
	if e == nil {
		return nil
	}
	return &FlightEntry{
		ID:              e.ID,
		Date:            e.Date,
		DateEpoch:       e.DateEpoch,
		Student:         e.Student,
		Instructor:      e.Instructor,
		Aircraft:        e.Aircraft,
		Exercise:        e.Exercise,
		FlightType:      string(e.FlightType),
		TakeoffTime:     e.TakeoffTime,
		LandingTime:     e.LandingTime,
		TotalFlightTime: e.TotalFlightTime,
		LandingType:     string(e.LandingType),
		LandingCount:    e.LandingCount,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// Model converts the wire form back to a domain entry. Enumerations are
// lower-cased so "Dual" and "dual" are accepted alike.
func (e *FlightEntry) Model() *models.FlightEntry {
	if e == nil {
		return &models.FlightEntry{}
	}
	return &models.FlightEntry{
		ID:              e.ID,
		Date:            e.Date,
		DateEpoch:       e.DateEpoch,
		Student:         e.Student,
		Instructor:      e.Instructor,
		Aircraft:        e.Aircraft,
		Exercise:        e.Exercise,
		FlightType:      models.FlightType(strings.ToLower(strings.TrimSpace(e.FlightType))),
		TakeoffTime:     e.TakeoffTime,
		LandingTime:     e.LandingTime,
		TotalFlightTime: e.TotalFlightTime,
		LandingType:     models.LandingType(strings.ToLower(strings.TrimSpace(e.LandingType))),
		LandingCount:    e.LandingCount,
		CreatedBy:       e.CreatedBy,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// FlightEntriesFromModels converts a listing.
func FlightEntriesFromModels(entries []*models.FlightEntry) []*FlightEntry {
	out := make([]*FlightEntry, len(entries))
	for i, e := range entries {
		out[i] = FlightEntryFromModel(e)
	}
	return out
}

// FlightEntryModels converts a listing back to domain entries.
func FlightEntryModels(entries []*FlightEntry) []*models.FlightEntry {
	out := make([]*models.FlightEntry, len(entries))
	for i, e := range entries {
		out[i] = e.Model()
	}
	return out
}

func UserFromModel(u *models.User) *User {
	if u == nil {
		return nil
	}
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func CategoryFromModel(c *models.Category) *Category {
	return &Category{Type: string(c.Type), Name: c.Name}
}
