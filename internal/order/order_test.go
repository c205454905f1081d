package order

import (
	"strings"
	"testing"

	"github.com/christoffel/menuapp/internal/models"
)

func TestEmptyOrder(t *testing.T) {
	var o Order

	if o.Total() != 0 {
		t.Errorf("empty order total = %v, want 0", o.Total())
	}
	if o.Len() != 0 {
		t.Errorf("empty order length = %d, want 0", o.Len())
	}
	if items := o.Items(); len(items) != 0 {
		t.Errorf("empty order items = %v", items)
	}
}

func TestAppendAndTotal(t *testing.T) {
	var o Order
	o.Append(models.MenuItem{ID: "1", Name: "Lobster Thermidor", Price: 300})
	o.Append(models.MenuItem{ID: "7", Name: "Classic Crème Brûlée", Price: 125})

	if o.Len() != 2 {
		t.Fatalf("order length = %d, want 2", o.Len())
	}
	if o.Total() != 425 {
		t.Errorf("order total = %v, want 425", o.Total())
	}
}

func TestAppendSameDishTwice(t *testing.T) {
	var o Order
	dish := models.MenuItem{ID: "5", Name: "Filet Steak", Price: 220}
	o.Append(dish)
	o.Append(dish)

	if o.Len() != 2 {
		t.Errorf("order length = %d, want 2 (duplicates kept)", o.Len())
	}
	if o.Total() != 440 {
		t.Errorf("order total = %v, want 440", o.Total())
	}
}

func TestAppendDrink(t *testing.T) {
	var o Order

	item := o.AppendDrink(models.HotDrinks, "Hot chocolate")

	if item.Price != DrinkPrice {
		t.Errorf("drink price = %v, want %v", item.Price, DrinkPrice)
	}
	if item.Course != models.CourseDrinks {
		t.Errorf("drink course = %q, want %q", item.Course, models.CourseDrinks)
	}
	if !strings.HasPrefix(item.ID, "drink-Hot-chocolate-") {
		t.Errorf("drink order ID = %q, want drink-Hot-chocolate- prefix", item.ID)
	}
	if o.Total() != DrinkPrice {
		t.Errorf("order total = %v, want %v", o.Total(), DrinkPrice)
	}
}

func TestAppendDrinkTwiceGetsDistinctLines(t *testing.T) {
	var o Order

	first := o.AppendDrink(models.ColdDrinks, "Ice water")
	second := o.AppendDrink(models.ColdDrinks, "Ice water")

	if first.ID == second.ID {
		t.Errorf("repeated drink adds share an ID: %q", first.ID)
	}
	if o.Len() != 2 {
		t.Errorf("order length = %d, want 2", o.Len())
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	var o Order
	o.Append(models.MenuItem{ID: "1", Name: "Lobster Thermidor", Price: 300})

	items := o.Items()
	items[0].Price = 1

	if o.Total() != 300 {
		t.Error("mutating Items() result changed the order")
	}
}
