package models

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single word", in: "Tea", want: "Tea"},
		{name: "spaces to dashes", in: "Ice water", want: "Ice-water"},
		{name: "multiple spaces collapse", in: "Any  frizzy   drink", want: "Any-frizzy-drink"},
		{name: "leading and trailing space trimmed", in: "  Coffee  ", want: "Coffee"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDrinkID(t *testing.T) {
	tests := []struct {
		name     string
		category DrinkCategory
		drink    string
		want     string
	}{
		{name: "cold drink", category: ColdDrinks, drink: "Ice water", want: "cold-Ice-water"},
		{name: "hot drink", category: HotDrinks, drink: "Hot chocolate", want: "hot-Hot-chocolate"},
		{name: "apostrophe kept", category: ColdDrinks, drink: "Fruit juice's", want: "cold-Fruit-juice's"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DrinkID(tt.category, tt.drink); got != tt.want {
				t.Errorf("DrinkID(%q, %q) = %q, want %q", tt.category, tt.drink, got, tt.want)
			}
		})
	}
}

func TestDrinksDataCloneDoesNotAlias(t *testing.T) {
	orig := DrinksData{
		Cold: []string{"Ice water"},
		Hot:  []string{"Tea", "Coffee"},
	}

	clone := orig.Clone()
	clone.Cold[0] = "Lemonade"
	clone.Hot = append(clone.Hot, "Hot chocolate")

	if orig.Cold[0] != "Ice water" {
		t.Errorf("clone mutation leaked into original: %q", orig.Cold[0])
	}
	if orig.Count() != 3 {
		t.Errorf("original count = %d, want 3", orig.Count())
	}
	if clone.Count() != 4 {
		t.Errorf("clone count = %d, want 4", clone.Count())
	}
}

func TestCourseValid(t *testing.T) {
	for _, course := range Courses {
		if !course.Valid() {
			t.Errorf("course %q should be valid", course)
		}
	}
	if Course("Brunch").Valid() {
		t.Error("unknown course should not be valid")
	}
	if Course("").Valid() {
		t.Error("empty course should not be valid")
	}
}
