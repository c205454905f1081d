package session

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/christoffel/menuapp/internal/models"
	"github.com/christoffel/menuapp/internal/storage"
)

// Controller owns the menu store and every live session. All transitions go
// through it: satellite screens never touch the store, they hand their
// results back here and the controller applies them.
type Controller struct {
	store storage.Store

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewController creates a controller around the given store.
func NewController(store storage.Store) *Controller {
	return &Controller{
		store:    store,
		sessions: make(map[string]*Session),
	}
}

// StartOptions carries the redirect flags the admin landing screen used to
// forward with. Route resolution happens in Start, before any view renders,
// so a stale Viewing screen never flashes first.
type StartOptions struct {
	User       models.User
	OpenEdit   bool
	OpenFilter bool
}

// Start creates a session and resolves its initial route. With no redirect
// flag set the session opens on Viewing.
func (c *Controller) Start(ctx context.Context, opts StartOptions) (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		User:      opts.User,
		CreatedAt: time.Now(),
		route:     RouteViewing,
		filter:    FilterAll,
	}

	switch {
	case opts.OpenEdit:
		snapshot, err := c.store.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		sess.enterSatellite(RouteEditing, snapshot)
	case opts.OpenFilter:
		snapshot, err := c.store.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		sess.enterSatellite(RouteFiltering, snapshot)
	}

	c.mu.Lock()
	c.sessions[sess.ID] = sess
	c.mu.Unlock()

	slog.Debug("session started", "session_id", sess.ID, "route", sess.route, "role", opts.User.Role)
	return sess, nil
}

// Get returns the session with the given ID.
func (c *Controller) Get(sessionID string) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// End removes a session.
func (c *Controller) End(sessionID string) {
	c.mu.Lock()
	delete(c.sessions, sessionID)
	c.mu.Unlock()
}

// View returns the current store state for the Viewing screen.
func (c *Controller) View(ctx context.Context, sessionID string) (storage.Menu, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return storage.Menu{}, ErrNotFound
	}
	if sess.route != RouteViewing {
		return storage.Menu{}, ErrWrongRoute
	}
	return c.store.Snapshot(ctx)
}

// BeginEdit moves the session onto the edit screen with a fresh snapshot and
// returns the current dish list for the form prefill.
func (c *Controller) BeginEdit(ctx context.Context, sessionID string) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.route != RouteViewing {
		return nil, ErrWrongRoute
	}
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sess.enterSatellite(RouteEditing, snapshot)
	return sess.snapshot.Items, nil
}

// SaveNewItem validates the edit form, builds the dish, and applies it to the
// store. The session stays on the edit screen so the chef can keep adding;
// each save is applied immediately. A duplicate ID would be silently ignored
// by the store, but IDs are freshly generated UUIDs so that only guards
// replayed requests.
func (c *Controller) SaveNewItem(ctx context.Context, sessionID string, form ItemForm) (models.MenuItem, storage.Menu, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return models.MenuItem{}, storage.Menu{}, ErrNotFound
	}
	if sess.route != RouteEditing {
		return models.MenuItem{}, storage.Menu{}, ErrWrongRoute
	}
	if err := form.Validate(); err != nil {
		return models.MenuItem{}, storage.Menu{}, err
	}

	item := models.MenuItem{
		ID:          uuid.New().String(),
		Name:        form.Name,
		Description: form.Description,
		Course:      form.Course,
		Price:       form.Price,
		ImageURI:    form.ImageURI,
	}
	menu, err := c.store.AddItem(ctx, item)
	if err != nil {
		return models.MenuItem{}, storage.Menu{}, err
	}
	// Keep the snapshot in step with the store so the prefill stays current.
	sess.snapshot = menu.Clone()

	slog.Info("dish added", "session_id", sessionID, "item_id", item.ID, "name", item.Name, "course", item.Course)
	return item, menu, nil
}

// AddDrink appends a drink to the store's list for the given category. It is
// not tied to a session: satellite snapshots pick up the new drink on their
// next entry, the same way they do for dishes added by another chef.
func (c *Controller) AddDrink(ctx context.Context, category models.DrinkCategory, name string) (storage.Menu, error) {
	if name == "" {
		return storage.Menu{}, &ValidationError{Field: "drink name"}
	}
	menu, err := c.store.AddDrink(ctx, category, name)
	if err != nil {
		return storage.Menu{}, err
	}
	slog.Info("drink added", "category", category, "name", name)
	return menu, nil
}

// BeginFilter moves the session onto the filter screen with a fresh snapshot
// and the selection reset to All.
func (c *Controller) BeginFilter(ctx context.Context, sessionID string) (storage.Menu, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return storage.Menu{}, ErrNotFound
	}
	if sess.route != RouteViewing {
		return storage.Menu{}, ErrWrongRoute
	}
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		return storage.Menu{}, err
	}
	sess.enterSatellite(RouteFiltering, snapshot)
	return sess.snapshot.Clone(), nil
}

// SetFilter switches the filter selection and returns the dishes it matches.
// Filtering is read-only over the snapshot; the store is never touched.
func (c *Controller) SetFilter(sessionID string, filter Filter) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.route != RouteFiltering {
		return nil, ErrWrongRoute
	}
	if filter != FilterAll && !models.Course(filter).Valid() {
		return nil, ErrUnknownFilter
	}
	sess.filter = filter
	return sess.filteredItems(), nil
}

// FilteredItems returns the dishes matching the current selection.
func (c *Controller) FilteredItems(sessionID string) ([]models.MenuItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.route != RouteFiltering {
		return nil, ErrWrongRoute
	}
	return sess.filteredItems(), nil
}

// AddToOrder appends the dish with the given ID to the session's order.
func (c *Controller) AddToOrder(sessionID, itemID string) (models.MenuItem, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return models.MenuItem{}, 0, ErrNotFound
	}
	if sess.route != RouteFiltering {
		return models.MenuItem{}, 0, ErrWrongRoute
	}
	item, found := sess.snapshotItem(itemID)
	if !found {
		return models.MenuItem{}, 0, ErrItemNotFound
	}
	sess.order.Append(item)
	slog.Debug("item ordered", "session_id", sessionID, "item_id", item.ID, "order_len", sess.order.Len())
	return item, sess.order.Len(), nil
}

// AddDrinkToOrder synthesizes an order line for the named drink at the flat
// drink price and appends it.
func (c *Controller) AddDrinkToOrder(sessionID string, category models.DrinkCategory, name string) (models.MenuItem, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return models.MenuItem{}, 0, ErrNotFound
	}
	if sess.route != RouteFiltering {
		return models.MenuItem{}, 0, ErrWrongRoute
	}
	if !sess.snapshotHasDrink(category, name) {
		return models.MenuItem{}, 0, ErrItemNotFound
	}
	item := sess.order.AppendDrink(category, name)
	slog.Debug("drink ordered", "session_id", sessionID, "name", name, "order_len", sess.order.Len())
	return item, sess.order.Len(), nil
}

// Checkout carries the accumulated order to the checkout screen and returns
// the ordered items with their total.
func (c *Controller) Checkout(sessionID string) ([]models.MenuItem, float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, 0, ErrNotFound
	}
	if sess.route != RouteFiltering && sess.route != RouteCheckout {
		return nil, 0, ErrWrongRoute
	}
	sess.route = RouteCheckout
	return sess.order.Items(), sess.order.Total(), nil
}

// BeginRemove moves the session onto the removal screen with a fresh snapshot
// and nothing marked.
func (c *Controller) BeginRemove(ctx context.Context, sessionID string) (storage.Menu, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return storage.Menu{}, ErrNotFound
	}
	if sess.route != RouteViewing {
		return storage.Menu{}, ErrWrongRoute
	}
	snapshot, err := c.store.Snapshot(ctx)
	if err != nil {
		return storage.Menu{}, err
	}
	sess.enterSatellite(RouteRemoving, snapshot)
	return sess.snapshot.Clone(), nil
}

// ToggleRemoval marks the given dish or drink ID for removal, or unmarks it
// if already marked. It returns the current marked set.
func (c *Controller) ToggleRemoval(sessionID, id string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	if sess.route != RouteRemoving {
		return nil, ErrWrongRoute
	}
	if !sess.snapshotHasID(id) {
		return nil, ErrItemNotFound
	}
	if _, marked := sess.marked[id]; marked {
		delete(sess.marked, id)
	} else {
		sess.marked[id] = struct{}{}
	}
	return sess.markedIDs(), nil
}

// SaveRemovals filters the snapshot by the marked set and hands the full
// replacement back to the store, then returns the session to Viewing. Saving
// with nothing marked is an informational no-op.
func (c *Controller) SaveRemovals(ctx context.Context, sessionID string) (storage.Menu, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return storage.Menu{}, ErrNotFound
	}
	if sess.route != RouteRemoving {
		return storage.Menu{}, ErrWrongRoute
	}
	if len(sess.marked) == 0 {
		return storage.Menu{}, ErrEmptySelection
	}

	updated := storage.RemoveByIDs(sess.snapshot, sess.marked)
	menu, err := c.store.Replace(ctx, updated)
	if err != nil {
		return storage.Menu{}, err
	}
	removed := len(sess.marked)
	sess.leaveSatellite()

	slog.Info("items removed", "session_id", sessionID, "removed", removed, "remaining", len(menu.Items)+menu.Drinks.Count())
	return menu, nil
}

// Back returns the session to Viewing from any satellite screen, discarding
// unsaved satellite state and the in-progress order.
func (c *Controller) Back(sessionID string) (Route, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sess, ok := c.sessions[sessionID]
	if !ok {
		return "", ErrNotFound
	}
	if sess.route == RouteCheckout {
		slog.Debug("order abandoned", "session_id", sessionID, "order_len", sess.order.Len())
	}
	sess.leaveSatellite()
	return sess.route, nil
}

func (s *Session) markedIDs() []string {
	ids := make([]string, 0, len(s.marked))
	for id := range s.marked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
