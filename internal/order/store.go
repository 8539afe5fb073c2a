package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("order not found")

// Store accumulates orders placed during this process's lifetime. They
// are never reconciled with the remote service; staff screens operate
// on this same store.
type Store struct {
	mu     sync.RWMutex
	orders []Order
	lastID string
}

func NewStore() *Store {
	return &Store{orders: []Order{}}
}

// Add assigns an id and creation timestamp and appends the order. It
// never rejects a draft.
func (s *Store) Add(d Draft) Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := Order{
		ID:              s.nextID(),
		Items:           d.Items,
		Total:           d.Total,
		Status:          d.Status,
		CustomerName:    d.CustomerName,
		CustomerPhone:   d.CustomerPhone,
		DeliveryAddress: d.DeliveryAddress,
		DeliveryType:    d.DeliveryType,
		CreatedAt:       time.Now().Format(time.RFC3339),
		EstimatedTime:   d.EstimatedTime,
	}
	if o.Status == "" {
		o.Status = StatusOrdered
	}
	s.orders = append(s.orders, o)
	return o
}

// nextID is "ORD" plus the current unix milliseconds. Two checkouts in
// the same millisecond would collide, so a repeat gets a short random
// suffix to keep ids distinct. Caller holds the lock.
func (s *Store) nextID() string {
	id := fmt.Sprintf("ORD%d", time.Now().UnixMilli())
	if id == s.lastID || s.contains(id) {
		id = fmt.Sprintf("%s-%s", id, uuid.New().String()[:8])
	}
	s.lastID = id
	return id
}

func (s *Store) contains(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// UpdateStatus replaces the status of the matching order. Transitions
// are not validated: staff screens drive the progression, and the
// store accepts whatever they set.
func (s *Store) UpdateStatus(id, status string) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return s.orders[i], nil
		}
	}
	return Order{}, ErrNotFound
}

// List returns orders in creation order.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) Get(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
