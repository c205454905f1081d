// Package session models the screen-to-screen data flow as an explicit state
// machine. The Viewing state owns the menu store; satellite screens (edit,
// filter, remove) each work on a snapshot taken on entry and hand back a
// delta or a full replacement, which the controller applies to the store.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/order"
	"github.com/christoffel/menuapp/internal/storage"
)

// Route identifies the screen a session currently shows.
type Route string

const (
	RouteViewing   Route = "viewing"
	RouteEditing   Route = "editing"
	RouteFiltering Route = "filtering"
	RouteRemoving  Route = "removing"
	RouteCheckout  Route = "checkout"
)

// Filter is the course selection on the filter screen. FilterAll shows the
// whole menu.
type Filter string

// FilterAll is the default selection when the filter screen opens.
const FilterAll Filter = "All"

var (
	ErrNotFound       = errors.New("session not found")
	ErrWrongRoute     = errors.New("operation not valid on the current screen")
	ErrEmptySelection = errors.New("no items were selected for removal")
	ErrItemNotFound   = errors.New("item is not on the menu snapshot")
	ErrUnknownFilter  = errors.New("unknown filter selection")
)

// ValidationError reports an edit form submitted with a missing required
// field. The form state is untouched and the store is never mutated.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in the %s field", e.Field)
}

// ItemForm carries the edit form fields for a new dish.
type ItemForm struct {
	Name        string
	Description string
	Course      models.Course
	Price       float64
	ImageURI    string
}

// Validate checks the form the way the edit screen does: every field is
// required before a save goes through. A non-positive price counts as missing
// since the price field starts empty.
func (f ItemForm) Validate() error {
	if f.Name == "" {
		return &ValidationError{Field: "dish name"}
	}
	if f.Description == "" {
		return &ValidationError{Field: "description"}
	}
	if f.Course == "" {
		return &ValidationError{Field: "course"}
	}
	if !f.Course.Valid() || f.Course == models.CourseDrinks {
		return &ValidationError{Field: "course"}
	}
	if f.Price <= 0 {
		return &ValidationError{Field: "price"}
	}
	if f.ImageURI == "" {
		return &ValidationError{Field: "image"}
	}
	return nil
}

// Session tracks one browsing session: its route, the snapshot a satellite
// screen works on, the removal marks, the filter selection, and the order
// being assembled. Sessions are only touched through the Controller.
type Session struct {
	ID        string
	User      models.User
	CreatedAt time.Time

	route    Route
	snapshot storage.Menu
	marked   map[string]struct{}
	filter   Filter
	order    order.Order
}

// Route returns the screen the session currently shows.
func (s *Session) Route() Route {
	return s.route
}

// enterSatellite moves the session onto a satellite screen with a fresh
// snapshot. Re-entering always starts from the current store state, never a
// stale cache.
func (s *Session) enterSatellite(route Route, snapshot storage.Menu) {
	s.route = route
	s.snapshot = snapshot
	s.marked = make(map[string]struct{})
	s.filter = FilterAll
}

// leaveSatellite returns the session to Viewing and drops all satellite
// state. Leaving the browse flow also abandons the in-progress order; there
// is no explicit clear-cart beyond this remount.
func (s *Session) leaveSatellite() {
	s.route = RouteViewing
	s.snapshot = storage.Menu{}
	s.marked = nil
	s.filter = FilterAll
	s.order = order.Order{}
}

// filteredItems applies the current filter selection to the snapshot. The
// Drinks selection is rendered from the snapshot's drink lists by the caller,
// so it yields no dishes here.
func (s *Session) filteredItems() []models.MenuItem {
	if s.filter == FilterAll {
		return append([]models.MenuItem(nil), s.snapshot.Items...)
	}
	var items []models.MenuItem
	for _, item := range s.snapshot.Items {
		if item.Course == models.Course(s.filter) {
			items = append(items, item)
		}
	}
	return items
}

// snapshotItem looks up a dish by ID in the satellite snapshot.
func (s *Session) snapshotItem(itemID string) (models.MenuItem, bool) {
	for _, item := range s.snapshot.Items {
		if item.ID == itemID {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// snapshotHasDrink reports whether the named drink is on the snapshot's list
// for the given category.
func (s *Session) snapshotHasDrink(category models.DrinkCategory, name string) bool {
	names := s.snapshot.Drinks.Cold
	if category == models.HotDrinks {
		names = s.snapshot.Drinks.Hot
	}
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

// snapshotHasID reports whether id addresses a dish or a drink in the
// snapshot. Drinks are addressed by their derived IDs.
func (s *Session) snapshotHasID(id string) bool {
	if _, ok := s.snapshotItem(id); ok {
		return true
	}
	for _, name := range s.snapshot.Drinks.Cold {
		if models.DrinkID(models.ColdDrinks, name) == id {
			return true
		}
	}
	for _, name := range s.snapshot.Drinks.Hot {
		if models.DrinkID(models.HotDrinks, name) == id {
			return true
		}
	}
	return false
}
