package storage

import (
	"testing"

	"github.com/christoffel/menuapp/internal/models"
)

func testMenu() Menu {
	return Menu{
		Items: []models.MenuItem{
			{ID: "1", Name: "Lobster Thermidor", Course: models.CourseSpecials, Price: 300},
			{ID: "4", Name: "Roasted Tomato Soup", Course: models.CourseStarter, Price: 70},
			{ID: "7", Name: "Classic Crème Brûlée", Course: models.CourseDessert, Price: 125},
		},
		Drinks: models.DrinksData{
			Cold: []string{"Ice water"},
			Hot:  []string{"Tea", "Coffee"},
		},
	}
}

func TestAddItemPrepends(t *testing.T) {
	m := testMenu()
	newItem := models.MenuItem{ID: "9", Name: "Pan-Fried Salmon", Course: models.CourseMainCourse, Price: 155}

	got := AddItem(m, newItem)

	if len(got.Items) != 4 {
		t.Fatalf("got %d items, want 4", len(got.Items))
	}
	if got.Items[0].ID != "9" {
		t.Errorf("new item should be first, got %q", got.Items[0].ID)
	}
	if got.Items[1].ID != "1" {
		t.Errorf("existing items should follow, got %q second", got.Items[1].ID)
	}
}

func TestAddItemDuplicateIDIsNoOp(t *testing.T) {
	m := testMenu()
	dup := models.MenuItem{ID: "4", Name: "Different Soup", Course: models.CourseStarter, Price: 80}

	got := AddItem(m, dup)

	if len(got.Items) != 3 {
		t.Fatalf("duplicate add changed item count: %d", len(got.Items))
	}
	if got.Items[1].Name != "Roasted Tomato Soup" {
		t.Errorf("duplicate add overwrote existing item: %q", got.Items[1].Name)
	}
}

func TestRemoveByIDs(t *testing.T) {
	m := testMenu()
	marked := map[string]struct{}{
		"4":         {},
		"hot-Tea":   {},
		"not-there": {},
	}

	got := RemoveByIDs(m, marked)

	if len(got.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Items))
	}
	// Survivors keep their relative order.
	if got.Items[0].ID != "1" || got.Items[1].ID != "7" {
		t.Errorf("surviving items out of order: %q, %q", got.Items[0].ID, got.Items[1].ID)
	}
	if len(got.Drinks.Hot) != 1 || got.Drinks.Hot[0] != "Coffee" {
		t.Errorf("hot drinks after removal = %v, want [Coffee]", got.Drinks.Hot)
	}
	if len(got.Drinks.Cold) != 1 {
		t.Errorf("cold drinks should be untouched, got %v", got.Drinks.Cold)
	}

	// The input menu is never mutated.
	if len(m.Items) != 3 || len(m.Drinks.Hot) != 2 {
		t.Error("RemoveByIDs mutated its input")
	}
}

func TestRemoveByIDsEmptySet(t *testing.T) {
	m := testMenu()

	got := RemoveByIDs(m, map[string]struct{}{})

	if len(got.Items) != 3 || got.Drinks.Count() != 3 {
		t.Errorf("empty removal set changed the menu: %d items, %d drinks", len(got.Items), got.Drinks.Count())
	}
}

func TestAddDrink(t *testing.T) {
	m := testMenu()

	got := AddDrink(m, models.ColdDrinks, "Lemonade")

	if len(got.Drinks.Cold) != 2 || got.Drinks.Cold[1] != "Lemonade" {
		t.Errorf("cold drinks = %v, want Lemonade appended", got.Drinks.Cold)
	}
	if len(m.Drinks.Cold) != 1 {
		t.Error("AddDrink mutated its input")
	}
}

func TestReplaceAll(t *testing.T) {
	m := testMenu()
	replacement := []models.MenuItem{
		{ID: "5", Name: "Filet Steak", Course: models.CourseMainCourse, Price: 220},
	}

	got := ReplaceAll(m, replacement)

	if len(got.Items) != 1 || got.Items[0].ID != "5" {
		t.Errorf("replacement not applied: %+v", got.Items)
	}
	if got.Drinks.Count() != 3 {
		t.Errorf("drinks should survive an item replacement, got %d", got.Drinks.Count())
	}
}

func TestMenuCloneDoesNotAlias(t *testing.T) {
	m := testMenu()

	clone := m.Clone()
	clone.Items[0].Name = "changed"
	clone.Drinks.Hot[0] = "changed"

	if m.Items[0].Name != "Lobster Thermidor" {
		t.Error("item mutation leaked into original")
	}
	if m.Drinks.Hot[0] != "Tea" {
		t.Error("drink mutation leaked into original")
	}
}
