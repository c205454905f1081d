package menu

import "github.com/christoffel/menuapp/internal/models"

// CourseAverage pairs a course with the mean price of its items.
type CourseAverage struct {
	Course  models.Course
	Average float64
}

// AveragePrice returns the arithmetic mean price of the items in course, at
// full float precision. An empty course yields 0, never a division by zero.
func AveragePrice(items []models.MenuItem, course models.Course) float64 {
	var sum float64
	var n int
	for _, item := range items {
		if item.Course != course {
			continue
		}
		sum += item.Price
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CourseAverages computes the mean price for every food course, in the fixed
// course order. Empty courses report an average of 0.
func CourseAverages(items []models.MenuItem) []CourseAverage {
	averages := make([]CourseAverage, 0, len(models.FoodCourses))
	for _, course := range models.FoodCourses {
		averages = append(averages, CourseAverage{
			Course:  course,
			Average: AveragePrice(items, course),
		})
	}
	return averages
}

// TotalItemCount counts dishes plus drinks, matching the stat box on the menu
// and removal screens.
func TotalItemCount(items []models.MenuItem, drinks models.DrinksData) int {
	return len(items) + drinks.Count()
}
