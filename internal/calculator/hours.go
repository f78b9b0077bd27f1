package calculator

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Flight is the subset of a flight entry the aggregator needs.
type Flight struct {
	Date            string
	Student         string
	Aircraft        string
	TotalFlightTime string
}

// Total is an aggregated decimal-hour sum for one key.
type Total struct {
	Name  string
	Hours float64
}

// SumHours adds up the flights' durations in decimal hours.
// Durations that fail to parse count as zero.
func SumHours(flights []Flight) float64 {
	minutes := 0
	for _, f := range flights {
		minutes += flightMinutes(f)
	}
	return float64(minutes) / 60
}

// DailyHours sums flights whose date equals day (YYYY-MM-DD).
func DailyHours(flights []Flight, day string) float64 {
	return sumWhere(flights, func(f Flight) bool { return f.Date == day })
}

// MonthlyHours sums flights whose date starts with month (YYYY-MM).
// It is a string prefix match and relies on canonical date strings.
func MonthlyHours(flights []Flight, month string) float64 {
	prefix := month + "-"
	return sumWhere(flights, func(f Flight) bool { return strings.HasPrefix(f.Date, prefix) })
}

// HoursByStudent groups flights by student name.
func HoursByStudent(flights []Flight) []Total {
	return groupBy(flights, func(f Flight) string { return f.Student })
}

// HoursByAircraft groups flights by aircraft name.
func HoursByAircraft(flights []Flight) []Total {
	return groupBy(flights, func(f Flight) string { return f.Aircraft })
}

// FormatHours renders decimal hours as H:MM, rounded to the nearest minute.
func FormatHours(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return InvalidDuration
	}
	minutes := int(math.Round(hours * 60))
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func sumWhere(flights []Flight, match func(Flight) bool) float64 {
	minutes := 0
	for _, f := range flights {
		if match(f) {
			minutes += flightMinutes(f)
		}
	}
	return float64(minutes) / 60
}

// groupBy returns totals sorted by hours descending, ties broken by name.
func groupBy(flights []Flight, key func(Flight) string) []Total {
	minutes := make(map[string]int)
	for _, f := range flights {
		minutes[key(f)] += flightMinutes(f)
	}

	totals := make([]Total, 0, len(minutes))
	for name, m := range minutes {
		totals = append(totals, Total{Name: name, Hours: float64(m) / 60})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Hours != totals[j].Hours {
			return totals[i].Hours > totals[j].Hours
		}
		return totals[i].Name < totals[j].Name
	})
	return totals
}

func flightMinutes(f Flight) int {
	m, err := DurationMinutes(f.TotalFlightTime)
	if err != nil {
		return 0
	}
	return m
}
