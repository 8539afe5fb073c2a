package cart

import (
	"sync"

	"thegriller/internal/menu"
)

// Line is one cart entry: the menu item plus how many of it.
type Line struct {
	menu.Item
	Quantity int `json:"quantity"`
}

// Store holds the shopping cart. Entirely local: nothing here touches
// the remote service.
type Store struct {
	mu    sync.RWMutex
	lines []Line
}

func NewStore() *Store {
	return &Store{lines: []Line{}}
}

// Add increments the existing line for the item, or appends a new line
// with quantity one at the end. Line order is otherwise preserved.
func (s *Store) Add(item menu.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Item: item, Quantity: 1})
}

// Remove drops the matching line. Absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line's quantity exactly. Zero or less removes
// the line, so a quantity below one is never observable.
func (s *Store) SetQuantity(id string, qty int) {
	if qty <= 0 {
		s.Remove(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = qty
			return
		}
	}
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = []Line{}
}

func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Subtotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sum float64
	for _, l := range s.lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}
