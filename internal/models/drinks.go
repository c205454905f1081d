package models

import "strings"

// DrinkCategory is one of the two fixed drink groupings.
type DrinkCategory string

const (
	ColdDrinks DrinkCategory = "Cold drinks"
	HotDrinks  DrinkCategory = "Hot drinks"
)

// DrinksData holds the drink names shown under the Drinks section. Drinks are
// plain names; duplicates are allowed.
type DrinksData struct {
	Cold []string
	Hot  []string
}

// Clone returns a deep copy so snapshots never alias the owning store's slices.
func (d DrinksData) Clone() DrinksData {
	return DrinksData{
		Cold: append([]string(nil), d.Cold...),
		Hot:  append([]string(nil), d.Hot...),
	}
}

// Count returns the total number of drinks across both categories.
func (d DrinksData) Count() int {
	return len(d.Cold) + len(d.Hot)
}

// Slug collapses runs of whitespace in name to single dashes. It is the one
// derivation used by both the removal-selection and order flows, so a given
// name always maps to the same slug.
func Slug(name string) string {
	return strings.Join(strings.Fields(name), "-")
}

// DrinkID derives the stable selection ID for a drink. Cold drinks map to
// "cold-<slug>", hot drinks to "hot-<slug>".
func DrinkID(category DrinkCategory, name string) string {
	prefix := "cold"
	if category == HotDrinks {
		prefix = "hot"
	}
	return prefix + "-" + Slug(name)
}
