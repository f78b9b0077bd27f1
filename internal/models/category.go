package models

import "strings"

// CategoryType names one of the reference lists.
type CategoryType string

const (
	CategoryStudent    CategoryType = "student"
	CategoryInstructor CategoryType = "instructor"
	CategoryAircraft   CategoryType = "aircraft"
	CategoryExercise   CategoryType = "exercise"
)

// CategoryTypes lists every reference list in display order.
var CategoryTypes = []CategoryType{
	CategoryStudent,
	CategoryInstructor,
	CategoryAircraft,
	CategoryExercise,
}

// ParseCategoryType validates a category type string.
func ParseCategoryType(s string) (CategoryType, error) {
	t := CategoryType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CategoryTypes {
		if t == known {
			return t, nil
		}
	}
	return "", newValidationError("categoryType", "must be student, instructor, aircraft or exercise")
}

// Category is a named item in a reference list.
// The name is unique within its type and doubles as the identifier.
type Category struct {
	Type CategoryType
	Name string
}

// CategoryName trims a user-supplied name and rejects empty or unprintable
// ones.
func CategoryName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", newValidationError("name", "is required")
	}
	if !printable(name) {
		return "", newValidationError("name", "must not contain control characters")
	}
	return name, nil
}
