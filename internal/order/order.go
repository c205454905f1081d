// Package order implements the order a guest assembles while browsing: an
// append-only list of items carried to checkout.
package order

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/christoffel/menuapp/internal/models"
)

// DrinkPrice is the flat price charged for any drink added to an order.
// Drinks carry no price of their own on the menu.
const DrinkPrice = 25

// Order is the append-only sequence of items a guest is assembling. The zero
// value is an empty order.
type Order struct {
	items []models.MenuItem
}

// Append adds item to the order. Ordering the same dish twice is valid, so
// duplicates are kept.
func (o *Order) Append(item models.MenuItem) {
	o.items = append(o.items, item)
}

// AppendDrink synthesizes a menu item for the named drink and appends it.
// Each add gets a fresh ID, so repeated adds of the same drink stay distinct
// line items.
func (o *Order) AppendDrink(category models.DrinkCategory, name string) models.MenuItem {
	item := models.MenuItem{
		ID:     fmt.Sprintf("drink-%s-%s", models.Slug(name), uuid.New().String()),
		Name:   name,
		Course: models.CourseDrinks,
		Price:  DrinkPrice,
	}
	o.Append(item)
	return item
}

// Items returns a copy of the ordered items in the order they were added.
func (o *Order) Items() []models.MenuItem {
	return append([]models.MenuItem(nil), o.items...)
}

// Total sums the prices of all ordered items. An empty order totals 0.
func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price
	}
	return total
}

// Len returns the number of ordered items.
func (o *Order) Len() int {
	return len(o.items)
}
