package store

import (
	"sync"

	"backoffice/internal/domain"
)

// Store holds the last-known-good snapshot of all orders fetched from the
// commerce API. The snapshot is replaced wholesale on every load, never
// patched, so readers see either the previous collection or the new one.
// All mutation of the orders themselves happens upstream; the store only
// reflects what the API last reported.
type Store struct {
	mu         sync.RWMutex
	byID       map[string]domain.Order
	ids        []string
	generation uint64
}

func New() *Store {
	return &Store{byID: make(map[string]domain.Order)}
}

// Load replaces the entire collection and bumps the generation counter.
// Duplicate ids collapse to the last occurrence, keeping the store
// id-addressable. Insertion order of first occurrence is preserved.
func (s *Store) Load(orders []domain.Order) {
	byID := make(map[string]domain.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if _, seen := byID[o.ID]; !seen {
			ids = append(ids, o.ID)
		}
		byID[o.ID] = o
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID = byID
	s.ids = ids
	s.generation++
}

// Orders returns a copy of the current collection. Callers own the copy
// and cannot corrupt the snapshot through it.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.Order, 0, len(s.ids))
	for _, id := range s.ids {
		orders = append(orders, s.byID[id])
	}
	return orders
}

// Get looks up a single order by id.
func (s *Store) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.byID[id]
	return o, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Generation increments on every Load. Consumers use it to tell whether
// the snapshot they derived state from is still current.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}
