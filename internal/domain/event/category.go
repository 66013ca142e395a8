package event

import "strings"

// Category is stored upper-cased so lookups are case-insensitive.
type Category string

const (
	CategoryConcert    Category = "CONCERT"
	CategorySports     Category = "SPORTS"
	CategoryTheater    Category = "THEATER"
	CategoryConference Category = "CONFERENCE"
	CategoryFestival   Category = "FESTIVAL"
)

func NewCategory(raw string) Category {
	return Category(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsKnown() bool {
	switch c {
	case CategoryConcert, CategorySports, CategoryTheater, CategoryConference, CategoryFestival:
		return true
	default:
		return false
	}
}
