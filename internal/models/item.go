package models

// Course is the fixed category a dish belongs to. The order of Courses is
// significant: grouped views always emit sections in that order.
type Course string

const (
	CourseSpecials   Course = "Specials"
	CourseStarter    Course = "Starter"
	CourseMainCourse Course = "Main Course"
	CourseDessert    Course = "Dessert"
	CourseDrinks     Course = "Drinks"
)

// Courses is the full ordered course list, Drinks last.
var Courses = []Course{CourseSpecials, CourseStarter, CourseMainCourse, CourseDessert, CourseDrinks}

// FoodCourses is the ordered course list offered by the edit form. The form
// never produces Drinks items; those live in DrinksData.
var FoodCourses = []Course{CourseSpecials, CourseStarter, CourseMainCourse, CourseDessert}

// Valid reports whether c is one of the five enumerated courses.
func (c Course) Valid() bool {
	for _, known := range Courses {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem represents a single sellable dish or drink.
type MenuItem struct {
	// ID is globally unique within the current menu. Seeded catalog entries
	// use small numeric strings; items created through the edit flow get a
	// UUID.
	ID string

	// Name is the non-empty display name of the dish.
	Name string

	// Description may be empty.
	Description string

	// Course places the item in one of the fixed sections.
	Course Course

	// Price is a non-negative amount in whole currency units. Stored at full
	// precision; rounding is a display concern.
	Price float64

	// ImageURI optionally references a user-supplied image. Empty means the
	// client falls back to the bundled placeholder.
	ImageURI string
}
