// Package storage provides the menu store: the single source of truth for
// the dish list and drink lists, plus the pure operations every flow applies
// to it.
package storage

import (
	"context"

	"github.com/christoffel/menuapp/internal/models"
)

// Menu is the aggregate store value: the dish list plus the cold/hot drink
// lists. Operations on Menu are pure; they return a new value and never
// mutate their input.
type Menu struct {
	Items  []models.MenuItem
	Drinks models.DrinksData
}

// Clone returns a deep copy. Snapshots handed to satellite flows are clones,
// never live references.
func (m Menu) Clone() Menu {
	return Menu{
		Items:  append([]models.MenuItem(nil), m.Items...),
		Drinks: m.Drinks.Clone(),
	}
}

// AddItem prepends item so newly added dishes surface first. Adding an item
// whose ID is already present is an idempotent no-op, not an error.
func AddItem(m Menu, item models.MenuItem) Menu {
	for _, existing := range m.Items {
		if existing.ID == item.ID {
			return m
		}
	}
	items := make([]models.MenuItem, 0, len(m.Items)+1)
	items = append(items, item)
	items = append(items, m.Items...)
	return Menu{Items: items, Drinks: m.Drinks}
}

// ReplaceAll swaps in a wholesale replacement dish list. Callers are
// responsible for ID uniqueness across the new list; the store only defends
// on the add path.
func ReplaceAll(m Menu, items []models.MenuItem) Menu {
	return Menu{Items: append([]models.MenuItem(nil), items...), Drinks: m.Drinks}
}

// RemoveByIDs filters out every dish whose ID is in ids and every drink whose
// derived ID is in ids. Survivors keep their original relative order.
func RemoveByIDs(m Menu, ids map[string]struct{}) Menu {
	items := make([]models.MenuItem, 0, len(m.Items))
	for _, item := range m.Items {
		if _, marked := ids[item.ID]; marked {
			continue
		}
		items = append(items, item)
	}

	filterDrinks := func(category models.DrinkCategory, names []string) []string {
		kept := make([]string, 0, len(names))
		for _, name := range names {
			if _, marked := ids[models.DrinkID(category, name)]; marked {
				continue
			}
			kept = append(kept, name)
		}
		return kept
	}

	return Menu{
		Items: items,
		Drinks: models.DrinksData{
			Cold: filterDrinks(models.ColdDrinks, m.Drinks.Cold),
			Hot:  filterDrinks(models.HotDrinks, m.Drinks.Hot),
		},
	}
}

// AddDrink appends name to the given category. Duplicate names are allowed.
func AddDrink(m Menu, category models.DrinkCategory, name string) Menu {
	drinks := m.Drinks.Clone()
	switch category {
	case models.HotDrinks:
		drinks.Hot = append(drinks.Hot, name)
	default:
		drinks.Cold = append(drinks.Cold, name)
	}
	return Menu{Items: m.Items, Drinks: drinks}
}

// Store defines the interface for menu store implementations.
// This abstraction keeps the session controller independent of the backing
// implementation.
type Store interface {
	// Snapshot returns a deep copy of the current menu.
	Snapshot(ctx context.Context) (Menu, error)

	// AddItem applies AddItem to the current menu and returns the result.
	AddItem(ctx context.Context, item models.MenuItem) (Menu, error)

	// AddDrink applies AddDrink to the current menu and returns the result.
	AddDrink(ctx context.Context, category models.DrinkCategory, name string) (Menu, error)

	// Replace swaps in a full replacement menu (items and drinks), as handed
	// back by the removal flow.
	Replace(ctx context.Context, menu Menu) (Menu, error)

	// Close releases any resources held by the store.
	Close() error
}
