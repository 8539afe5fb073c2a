package reservation

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("reservation not found")

// Store accumulates reservations for the process lifetime, mirroring
// the order store: client-local, staff screens act on the same data.
type Store struct {
	mu           sync.RWMutex
	reservations []Reservation
	lastID       string
}

func NewStore() *Store {
	return &Store{reservations: []Reservation{}}
}

// Add assigns an id, sets status to pending and appends.
func (s *Store) Add(d Draft) Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := Reservation{
		ID:            s.nextID(),
		CustomerName:  d.CustomerName,
		CustomerEmail: d.CustomerEmail,
		CustomerPhone: d.CustomerPhone,
		Date:          d.Date,
		Time:          d.Time,
		PartySize:     d.PartySize,
		Status:        StatusPending,
	}
	s.reservations = append(s.reservations, r)
	return r
}

// nextID is "RES" plus unix milliseconds, de-duplicated the same way
// as order ids. Caller holds the lock.
func (s *Store) nextID() string {
	id := fmt.Sprintf("RES%d", time.Now().UnixMilli())
	if id == s.lastID || s.contains(id) {
		id = fmt.Sprintf("%s-%s", id, uuid.New().String()[:8])
	}
	s.lastID = id
	return id
}

func (s *Store) contains(id string) bool {
	for _, r := range s.reservations {
		if r.ID == id {
			return true
		}
	}
	return false
}

// UpdateStatus replaces the status of the matching reservation without
// checking the transition. Staff screens only offer the sensible
// edges; the store itself accepts any known status.
func (s *Store) UpdateStatus(id, status string) (Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
			return s.reservations[i], nil
		}
	}
	return Reservation{}, ErrNotFound
}

func (s *Store) List() []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}
