package menu

import (
	"math"
	"testing"

	"github.com/christoffel/menuapp/internal/models"
)

func menuFixture() []models.MenuItem {
	return []models.MenuItem{
		{ID: "1", Name: "Lobster Thermidor", Course: models.CourseSpecials, Price: 300},
		{ID: "2", Name: "Chef's Tasting Platter", Course: models.CourseSpecials, Price: 350},
		{ID: "3", Name: "Seared Scallops", Course: models.CourseStarter, Price: 195},
		{ID: "4", Name: "Roasted Tomato Soup", Course: models.CourseStarter, Price: 70},
		{ID: "5", Name: "Filet Steak", Course: models.CourseMainCourse, Price: 220},
		{ID: "6", Name: "Pan-Fried Salmon", Course: models.CourseMainCourse, Price: 155},
		{ID: "7", Name: "Classic Crème Brûlée", Course: models.CourseDessert, Price: 125},
		{ID: "8", Name: "Chocolate Lava Pudding", Course: models.CourseDessert, Price: 95},
	}
}

func TestAveragePrice(t *testing.T) {
	items := menuFixture()

	tests := []struct {
		name   string
		course models.Course
		want   float64
	}{
		{name: "specials", course: models.CourseSpecials, want: 325},
		{name: "starters", course: models.CourseStarter, want: 132.5},
		{name: "mains", course: models.CourseMainCourse, want: 187.5},
		{name: "desserts", course: models.CourseDessert, want: 110},
		{name: "empty course yields zero", course: models.CourseDrinks, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AveragePrice(items, tt.course)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("AveragePrice(%q) = %v, want %v", tt.course, got, tt.want)
			}
		})
	}
}

func TestAveragePriceEmptyMenu(t *testing.T) {
	if got := AveragePrice(nil, models.CourseStarter); got != 0 {
		t.Errorf("AveragePrice on empty menu = %v, want 0", got)
	}
}

func TestCourseAveragesOrder(t *testing.T) {
	averages := CourseAverages(menuFixture())

	if len(averages) != len(models.FoodCourses) {
		t.Fatalf("got %d averages, want %d", len(averages), len(models.FoodCourses))
	}
	for i, avg := range averages {
		if avg.Course != models.FoodCourses[i] {
			t.Errorf("averages[%d].Course = %q, want %q", i, avg.Course, models.FoodCourses[i])
		}
	}
}

func TestTotalItemCount(t *testing.T) {
	drinks := models.DrinksData{
		Cold: []string{"Any frizzy drink", "Fruit juice's", "Ice water"},
		Hot:  []string{"Tea", "Coffee", "Hot chocolate"},
	}

	if got := TotalItemCount(menuFixture(), drinks); got != 14 {
		t.Errorf("TotalItemCount = %d, want 14", got)
	}
	if got := TotalItemCount(nil, models.DrinksData{}); got != 0 {
		t.Errorf("TotalItemCount on empty menu = %d, want 0", got)
	}
}
