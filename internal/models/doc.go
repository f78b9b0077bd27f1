// Package models defines the core domain models for the flight log.
//
// # Models
//
//   - FlightEntry: one logged training flight with its times and landings
//   - Category: an item of one of the four reference lists
//   - UserProfile: display name of an authenticated caller
//   - User: a registered account with a role
//   - AircraftSummary, StudentTotalHours: read-only aggregates
//
// # Design Principles
//
//  1. Flight entries reference students, instructors, aircraft and exercises
//     by name. Renaming a category does not rewrite existing entries.
//  2. Entries are identified by a store-issued ID. DateEpoch is derived from
//     Date and is never used to look an entry up.
//  3. Derived fields (TotalFlightTime, DateEpoch) are recomputed by Normalize
//     before every write, on both sides of the wire.
package models
