package memory

import (
	"context"
	"testing"

	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/storage"
)

func seed() storage.Menu {
	return storage.Menu{
		Items: []models.MenuItem{
			{ID: "1", Name: "Lobster Thermidor", Course: models.CourseSpecials, Price: 300},
			{ID: "4", Name: "Roasted Tomato Soup", Course: models.CourseStarter, Price: 70},
		},
		Drinks: models.DrinksData{
			Hot: []string{"Tea"},
		},
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	store := New(seed())
	ctx := context.Background()

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	snap.Items[0].Name = "changed"
	snap.Drinks.Hot[0] = "changed"

	again, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if again.Items[0].Name != "Lobster Thermidor" {
		t.Error("mutating a snapshot leaked into the store")
	}
	if again.Drinks.Hot[0] != "Tea" {
		t.Error("mutating snapshot drinks leaked into the store")
	}
}

func TestAddItemThenSnapshot(t *testing.T) {
	store := New(seed())
	ctx := context.Background()

	updated, err := store.AddItem(ctx, models.MenuItem{ID: "5", Name: "Filet Steak", Course: models.CourseMainCourse, Price: 220})
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if len(updated.Items) != 3 || updated.Items[0].ID != "5" {
		t.Fatalf("unexpected menu after add: %+v", updated.Items)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Items) != 3 {
		t.Errorf("add not visible in later snapshot: %d items", len(snap.Items))
	}
}

func TestReplaceSwapsWholeMenu(t *testing.T) {
	store := New(seed())
	ctx := context.Background()

	replacement := storage.Menu{
		Items:  []models.MenuItem{{ID: "4", Name: "Roasted Tomato Soup", Course: models.CourseStarter, Price: 70}},
		Drinks: models.DrinksData{},
	}
	if _, err := store.Replace(ctx, replacement); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	snap, err := store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(snap.Items) != 1 || snap.Drinks.Count() != 0 {
		t.Errorf("replacement not applied: %d items, %d drinks", len(snap.Items), snap.Drinks.Count())
	}
}

func TestAddDrink(t *testing.T) {
	store := New(seed())

	updated, err := store.AddDrink(context.Background(), models.ColdDrinks, "Ice water")
	if err != nil {
		t.Fatalf("AddDrink failed: %v", err)
	}
	if len(updated.Drinks.Cold) != 1 || updated.Drinks.Cold[0] != "Ice water" {
		t.Errorf("cold drinks = %v, want [Ice water]", updated.Drinks.Cold)
	}
}
