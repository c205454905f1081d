// Package memory provides an in-memory implementation of the storage.Store
// interface. The menu only lives as component state for the duration of the
// process; nothing is persisted.
package memory

import (
	"context"
	"sync"

	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with a mutex-guarded menu value.
// Mutations flow through the pure storage operations, so the guarded state is
// only ever swapped wholesale.
type MemoryStore struct {
	mu   sync.Mutex
	menu storage.Menu
}

// New creates a MemoryStore seeded with the given menu.
func New(seed storage.Menu) *MemoryStore {
	return &MemoryStore{menu: seed.Clone()}
}

// Snapshot returns a deep copy of the current menu.
func (s *MemoryStore) Snapshot(ctx context.Context) (storage.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.menu.Clone(), nil
}

// AddItem prepends item to the menu, ignoring duplicate IDs.
func (s *MemoryStore) AddItem(ctx context.Context, item models.MenuItem) (storage.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = storage.AddItem(s.menu, item)
	return s.menu.Clone(), nil
}

// AddDrink appends a drink name to the given category.
func (s *MemoryStore) AddDrink(ctx context.Context, category models.DrinkCategory, name string) (storage.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = storage.AddDrink(s.menu, category, name)
	return s.menu.Clone(), nil
}

// Replace swaps in the full replacement menu handed back by a satellite flow.
func (s *MemoryStore) Replace(ctx context.Context, menu storage.Menu) (storage.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu = menu.Clone()
	return s.menu.Clone(), nil
}

// Close is a no-op; the store holds no external resources.
func (s *MemoryStore) Close() error {
	return nil
}
