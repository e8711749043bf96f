package cart

import (
	"sync"

	"github.com/samber/lo"

	"github.com/cardsposters/storefront/internal/modules/catalog"
)

// Store owns the in-progress order list for the process lifetime. Items keep
// insertion order; adding a product already in the cart merges into the
// existing entry in place, so each product id appears at most once.
//
// The original event model was single-threaded; the HTTP surface is not, so
// every operation holds the store lock.
type Store struct {
	mu    sync.Mutex
	items []Item
}

func NewStore() *Store { return &Store{} }

// Add puts one more of the product in the cart: an existing entry has its
// quantity incremented by 1, otherwise a new entry with quantity 1 is
// appended at the end.
func (s *Store) Add(p catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{Product: p, Quantity: 1})
}

// Remove deletes the item with the given product id. Removing an absent id is
// a no-op, not an error.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

func (s *Store) removeLocked(id string) {
	s.items = lo.Reject(s.items, func(it Item, _ int) bool {
		return it.ID == id
	})
}

// UpdateQuantity sets the item's quantity to exactly q. A quantity of zero or
// below removes the item — the minus control in the UI relies on this.
// Updating an absent id is a no-op and never creates an entry.
func (s *Store) UpdateQuantity(id string, q int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if q <= 0 {
		s.removeLocked(id)
		return
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = q
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the cart in its current order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the running order total, recomputed from current state on every
// read.
func (s *Store) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.SumBy(s.items, func(it Item) int { return it.Price * it.Quantity })
}

// Count is the number of photos in the cart (sum of quantities), used for the
// cart badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.SumBy(s.items, func(it Item) int { return it.Quantity })
}

// Snapshot reads items, total and count under one lock acquisition.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items: items,
		Total: lo.SumBy(s.items, func(it Item) int { return it.Price * it.Quantity }),
		Count: lo.SumBy(s.items, func(it Item) int { return it.Quantity }),
	}
}
