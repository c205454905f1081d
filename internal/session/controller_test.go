package session

import (
	"context"
	"errors"
	"testing"

	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/order"
	"github.com/christoffel/menuapp/internal/storage"
	"github.com/christoffel/menuapp/internal/storage/memory"
)

func seedMenu() storage.Menu {
	return storage.Menu{
		Items: []models.MenuItem{
			{ID: "1", Name: "Lobster Thermidor", Description: "Grilled lobster tail.", Course: models.CourseSpecials, Price: 300},
			{ID: "3", Name: "Seared Scallops", Description: "Pan-fried scallops.", Course: models.CourseStarter, Price: 195},
			{ID: "4", Name: "Roasted Tomato Soup", Description: "Slow-roasted tomatoes.", Course: models.CourseStarter, Price: 70},
			{ID: "5", Name: "Filet Steak", Description: "Tender beef fillet.", Course: models.CourseMainCourse, Price: 220},
		},
		Drinks: models.DrinksData{
			Cold: []string{"Ice water"},
			Hot:  []string{"Tea", "Coffee"},
		},
	}
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(memory.New(seedMenu()))
}

func startSession(t *testing.T, c *Controller, opts StartOptions) *Session {
	t.Helper()
	sess, err := c.Start(context.Background(), opts)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return sess
}

func TestStartResolvesInitialRoute(t *testing.T) {
	chef := models.User{Username: "chef", Role: models.RoleAdmin}

	tests := []struct {
		name string
		opts StartOptions
		want Route
	}{
		{name: "default opens viewing", opts: StartOptions{}, want: RouteViewing},
		{name: "open edit lands on editing", opts: StartOptions{User: chef, OpenEdit: true}, want: RouteEditing},
		{name: "open filter lands on filtering", opts: StartOptions{OpenFilter: true}, want: RouteFiltering},
		{name: "edit wins over filter", opts: StartOptions{User: chef, OpenEdit: true, OpenFilter: true}, want: RouteEditing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			sess := startSession(t, c, tt.opts)
			if sess.Route() != tt.want {
				t.Errorf("initial route = %q, want %q", sess.Route(), tt.want)
			}
		})
	}
}

func TestViewOnlyFromViewing(t *testing.T) {
	c := newTestController(t)
	sess := startSession(t, c, StartOptions{OpenFilter: true})

	if _, err := c.View(context.Background(), sess.ID); !errors.Is(err, ErrWrongRoute) {
		t.Errorf("View from filtering: err = %v, want ErrWrongRoute", err)
	}
}

func TestUnknownSession(t *testing.T) {
	c := newTestController(t)

	if _, err := c.View(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("View: err = %v, want ErrNotFound", err)
	}
	if _, err := c.Back("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Back: err = %v, want ErrNotFound", err)
	}
}

func TestSaveNewItemPrependsAndStaysEditing(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{User: models.User{Username: "chef", Role: models.RoleAdmin}})

	items, err := c.BeginEdit(ctx, sess.ID)
	if err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("edit prefill has %d items, want 4", len(items))
	}

	form := ItemForm{
		Name:        "Pan-Fried Salmon",
		Description: "Salmon fillets with dill sauce.",
		Course:      models.CourseMainCourse,
		Price:       155,
		ImageURI:    "https://example.com/salmon.jpg",
	}
	item, menu, err := c.SaveNewItem(ctx, sess.ID, form)
	if err != nil {
		t.Fatalf("SaveNewItem failed: %v", err)
	}
	if item.ID == "" {
		t.Error("saved item has no ID")
	}
	if len(menu.Items) != 5 || menu.Items[0].ID != item.ID {
		t.Errorf("new dish should be first of 5, got %d items, first %q", len(menu.Items), menu.Items[0].ID)
	}
	if sess.Route() != RouteEditing {
		t.Errorf("route after save = %q, want editing", sess.Route())
	}

	// A second save goes through without re-entering the edit screen.
	form.Name = "Roast Chicken"
	if _, menu, err = c.SaveNewItem(ctx, sess.ID, form); err != nil {
		t.Fatalf("second SaveNewItem failed: %v", err)
	}
	if len(menu.Items) != 6 {
		t.Errorf("menu has %d items after two saves, want 6", len(menu.Items))
	}
}

func TestSaveNewItemValidation(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{User: models.User{Role: models.RoleAdmin}, OpenEdit: true})

	valid := ItemForm{
		Name:        "Pan-Fried Salmon",
		Description: "Salmon fillets.",
		Course:      models.CourseMainCourse,
		Price:       155,
		ImageURI:    "https://example.com/salmon.jpg",
	}

	tests := []struct {
		name   string
		mutate func(f *ItemForm)
	}{
		{name: "missing name", mutate: func(f *ItemForm) { f.Name = "" }},
		{name: "missing description", mutate: func(f *ItemForm) { f.Description = "" }},
		{name: "missing course", mutate: func(f *ItemForm) { f.Course = "" }},
		{name: "drinks course rejected", mutate: func(f *ItemForm) { f.Course = models.CourseDrinks }},
		{name: "unknown course", mutate: func(f *ItemForm) { f.Course = "Brunch" }},
		{name: "zero price", mutate: func(f *ItemForm) { f.Price = 0 }},
		{name: "negative price", mutate: func(f *ItemForm) { f.Price = -10 }},
		{name: "missing image", mutate: func(f *ItemForm) { f.ImageURI = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			_, _, err := c.SaveNewItem(ctx, sess.ID, form)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
		})
	}

	// Nothing was added by the rejected saves.
	menu, err := c.store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(menu.Items) != 4 {
		t.Errorf("rejected saves changed the menu: %d items", len(menu.Items))
	}
}

func TestSaveNewItemRequiresEditRoute(t *testing.T) {
	c := newTestController(t)
	sess := startSession(t, c, StartOptions{})

	_, _, err := c.SaveNewItem(context.Background(), sess.ID, ItemForm{})
	if !errors.Is(err, ErrWrongRoute) {
		t.Errorf("err = %v, want ErrWrongRoute", err)
	}
}

func TestFilterFlow(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{})

	snapshot, err := c.BeginFilter(ctx, sess.ID)
	if err != nil {
		t.Fatalf("BeginFilter failed: %v", err)
	}
	if len(snapshot.Items) != 4 {
		t.Fatalf("filter snapshot has %d items, want 4", len(snapshot.Items))
	}

	// Default selection shows everything.
	items, err := c.FilteredItems(sess.ID)
	if err != nil {
		t.Fatalf("FilteredItems failed: %v", err)
	}
	if len(items) != 4 {
		t.Errorf("default filter shows %d items, want 4", len(items))
	}

	items, err = c.SetFilter(sess.ID, Filter(models.CourseStarter))
	if err != nil {
		t.Fatalf("SetFilter failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("starter filter shows %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Course != models.CourseStarter {
			t.Errorf("filtered item %q has course %q", item.Name, item.Course)
		}
	}

	// Back to everything.
	items, err = c.SetFilter(sess.ID, FilterAll)
	if err != nil {
		t.Fatalf("SetFilter(All) failed: %v", err)
	}
	if len(items) != 4 {
		t.Errorf("All filter shows %d items, want 4", len(items))
	}

	if _, err := c.SetFilter(sess.ID, Filter("Brunch")); !errors.Is(err, ErrUnknownFilter) {
		t.Errorf("unknown filter: err = %v, want ErrUnknownFilter", err)
	}
}

func TestOrderAndCheckout(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{OpenFilter: true})

	item, size, err := c.AddToOrder(sess.ID, "1")
	if err != nil {
		t.Fatalf("AddToOrder failed: %v", err)
	}
	if item.Name != "Lobster Thermidor" || size != 1 {
		t.Errorf("got %q (size %d), want Lobster Thermidor (size 1)", item.Name, size)
	}

	drink, size, err := c.AddDrinkToOrder(sess.ID, models.HotDrinks, "Tea")
	if err != nil {
		t.Fatalf("AddDrinkToOrder failed: %v", err)
	}
	if drink.Price != order.DrinkPrice || size != 2 {
		t.Errorf("drink price %v (size %d), want %v (size 2)", drink.Price, size, order.DrinkPrice)
	}

	items, total, err := c.Checkout(sess.ID)
	if err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("checkout has %d items, want 2", len(items))
	}
	if want := 300.0 + order.DrinkPrice; total != want {
		t.Errorf("checkout total = %v, want %v", total, want)
	}
	if sess.Route() != RouteCheckout {
		t.Errorf("route after checkout = %q, want checkout", sess.Route())
	}

	// Going back abandons the order.
	route, err := c.Back(sess.ID)
	if err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if route != RouteViewing {
		t.Errorf("route after back = %q, want viewing", route)
	}
	if _, err := c.BeginFilter(ctx, sess.ID); err != nil {
		t.Fatalf("BeginFilter failed: %v", err)
	}
	if _, _, err := c.Checkout(sess.ID); err != nil {
		t.Fatalf("Checkout failed: %v", err)
	}
	if _, total, _ := c.Checkout(sess.ID); total != 0 {
		t.Errorf("order survived Back: total = %v", total)
	}
}

func TestAddToOrderUnknownItem(t *testing.T) {
	c := newTestController(t)
	sess := startSession(t, c, StartOptions{OpenFilter: true})

	if _, _, err := c.AddToOrder(sess.ID, "999"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
	if _, _, err := c.AddDrinkToOrder(sess.ID, models.ColdDrinks, "Lemonade"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("unlisted drink: err = %v, want ErrItemNotFound", err)
	}
}

func TestRemovalFlow(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{User: models.User{Role: models.RoleAdmin}})

	snapshot, err := c.BeginRemove(ctx, sess.ID)
	if err != nil {
		t.Fatalf("BeginRemove failed: %v", err)
	}
	if got := len(snapshot.Items) + snapshot.Drinks.Count(); got != 7 {
		t.Fatalf("removal snapshot counts %d entries, want 7", got)
	}

	marked, err := c.ToggleRemoval(sess.ID, "4")
	if err != nil {
		t.Fatalf("ToggleRemoval failed: %v", err)
	}
	if len(marked) != 1 || marked[0] != "4" {
		t.Errorf("marked = %v, want [4]", marked)
	}

	marked, err = c.ToggleRemoval(sess.ID, "hot-Tea")
	if err != nil {
		t.Fatalf("ToggleRemoval drink failed: %v", err)
	}
	if len(marked) != 2 {
		t.Errorf("marked = %v, want two entries", marked)
	}

	menu, err := c.SaveRemovals(ctx, sess.ID)
	if err != nil {
		t.Fatalf("SaveRemovals failed: %v", err)
	}
	if len(menu.Items) != 3 {
		t.Errorf("menu has %d items after removal, want 3", len(menu.Items))
	}
	if len(menu.Drinks.Hot) != 1 || menu.Drinks.Hot[0] != "Coffee" {
		t.Errorf("hot drinks after removal = %v, want [Coffee]", menu.Drinks.Hot)
	}
	if sess.Route() != RouteViewing {
		t.Errorf("route after save = %q, want viewing", sess.Route())
	}
}

func TestToggleRemovalUndoLeavesMenuUntouched(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()
	sess := startSession(t, c, StartOptions{User: models.User{Role: models.RoleAdmin}})

	if _, err := c.BeginRemove(ctx, sess.ID); err != nil {
		t.Fatalf("BeginRemove failed: %v", err)
	}
	if _, err := c.ToggleRemoval(sess.ID, "1"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	marked, err := c.ToggleRemoval(sess.ID, "1")
	if err != nil {
		t.Fatalf("unmark failed: %v", err)
	}
	if len(marked) != 0 {
		t.Errorf("marked after undo = %v, want empty", marked)
	}

	// Saving with nothing marked is refused and the menu is untouched.
	if _, err := c.SaveRemovals(ctx, sess.ID); !errors.Is(err, ErrEmptySelection) {
		t.Errorf("err = %v, want ErrEmptySelection", err)
	}
	menu, err := c.store.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(menu.Items) != 4 || menu.Drinks.Count() != 3 {
		t.Errorf("menu changed: %d items, %d drinks", len(menu.Items), menu.Drinks.Count())
	}
}

func TestToggleRemovalUnknownID(t *testing.T) {
	c := newTestController(t)
	sess := startSession(t, c, StartOptions{User: models.User{Role: models.RoleAdmin}})

	if _, err := c.BeginRemove(context.Background(), sess.ID); err != nil {
		t.Fatalf("BeginRemove failed: %v", err)
	}
	if _, err := c.ToggleRemoval(sess.ID, "999"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("err = %v, want ErrItemNotFound", err)
	}
}

func TestSnapshotStaleUntilReentry(t *testing.T) {
	c := newTestController(t)
	ctx := context.Background()

	guest := startSession(t, c, StartOptions{OpenFilter: true})
	chef := startSession(t, c, StartOptions{User: models.User{Role: models.RoleAdmin}, OpenEdit: true})

	form := ItemForm{
		Name:        "Pan-Fried Salmon",
		Description: "Salmon fillets.",
		Course:      models.CourseMainCourse,
		Price:       155,
		ImageURI:    "https://example.com/salmon.jpg",
	}
	saved, _, err := c.SaveNewItem(ctx, chef.ID, form)
	if err != nil {
		t.Fatalf("SaveNewItem failed: %v", err)
	}

	// The guest's open filter screen still works on its entry snapshot.
	if _, _, err := c.AddToOrder(guest.ID, saved.ID); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("stale snapshot served the new dish: err = %v", err)
	}

	// Leaving and re-entering picks the new dish up.
	if _, err := c.Back(guest.ID); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if _, err := c.BeginFilter(ctx, guest.ID); err != nil {
		t.Fatalf("BeginFilter failed: %v", err)
	}
	if _, _, err := c.AddToOrder(guest.ID, saved.ID); err != nil {
		t.Errorf("fresh snapshot missing the new dish: %v", err)
	}
}

func TestEndSession(t *testing.T) {
	c := newTestController(t)
	sess := startSession(t, c, StartOptions{})

	c.End(sess.ID)

	if _, err := c.Get(sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAddDrinkValidatesName(t *testing.T) {
	c := newTestController(t)

	_, err := c.AddDrink(context.Background(), models.ColdDrinks, "")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	menu, err := c.AddDrink(context.Background(), models.ColdDrinks, "Lemonade")
	if err != nil {
		t.Fatalf("AddDrink failed: %v", err)
	}
	if len(menu.Drinks.Cold) != 2 {
		t.Errorf("cold drinks = %v, want Lemonade appended", menu.Drinks.Cold)
	}
}
