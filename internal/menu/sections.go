// Package menu computes the derived views of a menu snapshot: course
// sections, per-course averages, and item counts. Everything here is pure;
// callers hand in a snapshot and render the result.
package menu

import "github.com/christoffel/menuapp/internal/models"

// Section is a display grouping of items sharing a course.
type Section struct {
	Title models.Course
	Data  []models.MenuItem
}

// GroupByCourse partitions items by course. Courses with no items get no map
// entry.
func GroupByCourse(items []models.MenuItem) map[models.Course][]models.MenuItem {
	grouped := make(map[models.Course][]models.MenuItem)
	for _, item := range items {
		grouped[item.Course] = append(grouped[item.Course], item)
	}
	return grouped
}

// Sectionize groups items into sections in the fixed course order, skipping
// Drinks (rendered from DrinksData, not from items) and skipping empty
// courses. Order within a section follows the input order; nothing is
// re-sorted.
func Sectionize(items []models.MenuItem) []Section {
	grouped := GroupByCourse(items)

	var sections []Section
	for _, course := range models.FoodCourses {
		data := grouped[course]
		if len(data) == 0 {
			continue
		}
		sections = append(sections, Section{Title: course, Data: data})
	}
	return sections
}
