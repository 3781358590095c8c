package adapter

import (
	"sync"

	"retail-insights/internal/features/orders/domain"
)

// MemoryStore implements ports.OrderRepository in process memory.
// The whole set is swapped on every load; nothing is persisted.
type MemoryStore struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: map[string]int{}}
}

// ReplaceAll stores a private copy of orders.
// When ids repeat, FindByID resolves to the first occurrence.
func (s *MemoryStore) ReplaceAll(orders []domain.Order) {
	cp := make([]domain.Order, len(orders))
	copy(cp, orders)

	byID := make(map[string]int, len(cp))
	for i, o := range cp {
		if _, seen := byID[o.ID]; !seen {
			byID[o.ID] = i
		}
	}

	s.mu.Lock()
	s.orders = cp
	s.byID = byID
	s.mu.Unlock()
}

// All returns a copy of the stored orders.
func (s *MemoryStore) All() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// FindByID returns the order with the given id.
func (s *MemoryStore) FindByID(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return domain.Order{}, false
	}
	return s.orders[i], true
}
