package menu

import (
	"context"
	"errors"
	"sync"

	"thegriller/internal/remote"
)

// ErrNotAuthorized is returned before any request is attempted when a
// privileged catalog operation is tried without a session token.
var ErrNotAuthorized = errors.New("you are not authorized to manage the menu")

// Catalog is the slice of the remote client the store depends on.
type Catalog interface {
	FetchMenu(ctx context.Context) ([]remote.MenuRow, error)
	CreateMenuItem(ctx context.Context, token string, in remote.MenuItemInput) (*remote.MenuRow, error)
	UpdateMenuItem(ctx context.Context, token, id string, in remote.MenuItemInput) error
	DeleteMenuItem(ctx context.Context, token, id string) error
}

// ItemInput is the write shape collected by the management views.
type ItemInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	IsVegetarian bool    `json:"isVegetarian"`
	IsVegan      bool    `json:"isVegan"`
	IsSpicy      bool    `json:"isSpicy"`
}

func (in ItemInput) asRow() remote.MenuItemInput {
	return remote.MenuItemInput{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Category:     in.Category,
		ImageURL:     in.Image,
		IsVegetarian: boolFlag(in.IsVegetarian),
		IsVegan:      boolFlag(in.IsVegan),
		IsSpicy:      boolFlag(in.IsSpicy),
	}
}

func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Store is the read-through cache of the menu catalog. The remote
// service owns the truth; consumers only ever see this cache.
type Store struct {
	catalog Catalog

	mu      sync.RWMutex
	items   []Item
	loading bool
	lastErr string
}

func NewStore(catalog Catalog) *Store {
	return &Store{
		catalog: catalog,
		items:   []Item{},
	}
}

// Snapshot is what the menu views render from.
type Snapshot struct {
	Items   []Item `json:"items"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{Items: items, Loading: s.loading, Error: s.lastErr}
}

func (s *Store) Items() []Item {
	return s.Snapshot().Items
}

func (s *Store) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Refresh fetches the catalog and replaces the cache in one step, so a
// concurrent reader never observes a partially updated list. On
// failure the previous cache survives and the error flag is set.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	rows, err := s.catalog.FetchMenu(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.lastErr = "Failed to load menu from database"
		return err
	}
	s.items = FromRows(rows)
	s.lastErr = ""
	return nil
}

// Create adds an item through the remote service and appends the row
// it assigned to the cache.
func (s *Store) Create(ctx context.Context, token string, in ItemInput) (Item, error) {
	if token == "" {
		return Item{}, ErrNotAuthorized
	}
	row, err := s.catalog.CreateMenuItem(ctx, token, in.asRow())
	if err != nil {
		return Item{}, err
	}
	item := FromRow(*row)
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
	return item, nil
}

// Update edits an item in place. The service does not echo the row
// back, so the cached entry is rebuilt from the submitted input under
// its existing id.
func (s *Store) Update(ctx context.Context, token, id string, in ItemInput) (Item, error) {
	if token == "" {
		return Item{}, ErrNotAuthorized
	}
	if err := s.catalog.UpdateMenuItem(ctx, token, id, in.asRow()); err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID != id {
			continue
		}
		s.items[i] = in.apply(it)
		return s.items[i], nil
	}

	// The remote edit succeeded even though the id was not cached
	// (stale cache, or the edit raced a refresh). Re-add the entry the
	// same way Create does instead of reporting a failure.
	item := in.apply(Item{
		ID:              id,
		Allergens:       []string{},
		NutritionalInfo: NutritionalInfo{Protein: "0g", Carbs: "0g", Fat: "0g"},
		Reviews:         []Review{},
	})
	s.items = append(s.items, item)
	return item, nil
}

// apply copies the editable fields onto an existing item, leaving id
// and the fetch-only fields (allergens, nutrition, reviews) alone.
func (in ItemInput) apply(it Item) Item {
	it.Name = in.Name
	it.Description = in.Description
	it.Price = in.Price
	it.Category = in.Category
	it.Image = in.Image
	it.IsVegetarian = in.IsVegetarian
	it.IsVegan = in.IsVegan
	it.IsSpicy = in.IsSpicy
	return it
}

// Delete removes an item remotely, then from the cache.
func (s *Store) Delete(ctx context.Context, token, id string) error {
	if token == "" {
		return ErrNotAuthorized
	}
	if err := s.catalog.DeleteMenuItem(ctx, token, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}
