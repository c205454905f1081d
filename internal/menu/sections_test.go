package menu

import (
	"testing"

	"github.com/christoffel/menuapp/internal/models"
)

func TestSectionizeKeepsCourseOrder(t *testing.T) {
	// Fixture order deliberately scrambles courses; sections must come out in
	// the fixed menu order regardless.
	items := []models.MenuItem{
		{ID: "7", Name: "Classic Crème Brûlée", Course: models.CourseDessert, Price: 125},
		{ID: "1", Name: "Lobster Thermidor", Course: models.CourseSpecials, Price: 300},
		{ID: "5", Name: "Filet Steak", Course: models.CourseMainCourse, Price: 220},
		{ID: "3", Name: "Seared Scallops", Course: models.CourseStarter, Price: 195},
		{ID: "2", Name: "Chef's Tasting Platter", Course: models.CourseSpecials, Price: 350},
	}

	sections := Sectionize(items)

	wantTitles := []models.Course{
		models.CourseSpecials,
		models.CourseStarter,
		models.CourseMainCourse,
		models.CourseDessert,
	}
	if len(sections) != len(wantTitles) {
		t.Fatalf("got %d sections, want %d", len(sections), len(wantTitles))
	}
	for i, section := range sections {
		if section.Title != wantTitles[i] {
			t.Errorf("sections[%d].Title = %q, want %q", i, section.Title, wantTitles[i])
		}
	}

	// Within a section the items keep their menu order.
	specials := sections[0].Data
	if len(specials) != 2 || specials[0].ID != "1" || specials[1].ID != "2" {
		t.Errorf("specials section out of order: %+v", specials)
	}
}

func TestSectionizeSkipsEmptyCourses(t *testing.T) {
	items := []models.MenuItem{
		{ID: "4", Name: "Roasted Tomato Soup", Course: models.CourseStarter, Price: 70},
	}

	sections := Sectionize(items)

	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Title != models.CourseStarter {
		t.Errorf("section title = %q, want %q", sections[0].Title, models.CourseStarter)
	}
}

func TestSectionizeEmptyMenu(t *testing.T) {
	if sections := Sectionize(nil); len(sections) != 0 {
		t.Errorf("expected no sections for empty menu, got %d", len(sections))
	}
}
