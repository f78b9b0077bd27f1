package models

// AircraftSummary is the total logged time of one aircraft.
type AircraftSummary struct {
	Aircraft   string
	TotalHours float64
}

// StudentTotalHours is the total logged time of one student.
type StudentTotalHours struct {
	Student    string
	TotalHours float64
}
