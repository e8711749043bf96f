package cart

import (
	"fmt"

	"github.com/cardsposters/storefront/internal/logger"
	"github.com/cardsposters/storefront/internal/modules/catalog"
)

// Service defines cart business logic. Mutations resolve catalogue ids before
// touching the store so the cart only ever holds real products.
type Service interface {
	AddProduct(productID string) (Snapshot, error)
	RemoveItem(productID string) Snapshot
	UpdateQuantity(productID string, quantity int) Snapshot
	Clear() Snapshot
	Snapshot() Snapshot
}

type service struct {
	store   *Store
	catalog catalog.Service
}

// NewService creates a cart service over the process-wide store.
func NewService(store *Store, cat catalog.Service) Service {
	return &service{store: store, catalog: cat}
}

func (s *service) AddProduct(productID string) (Snapshot, error) {
	const op = "cart.service.AddProduct"

	p, ok := s.catalog.GetProduct(productID)
	if !ok {
		logger.Warn("add to cart: unknown product", logger.String("product_id", productID))
		return s.store.Snapshot(), fmt.Errorf("%s: %q: %w", op, productID, ErrProductNotFound)
	}
	s.store.Add(p)
	return s.store.Snapshot(), nil
}

func (s *service) RemoveItem(productID string) Snapshot {
	s.store.Remove(productID)
	return s.store.Snapshot()
}

func (s *service) UpdateQuantity(productID string, quantity int) Snapshot {
	s.store.UpdateQuantity(productID, quantity)
	return s.store.Snapshot()
}

func (s *service) Clear() Snapshot {
	s.store.Clear()
	return s.store.Snapshot()
}

func (s *service) Snapshot() Snapshot { return s.store.Snapshot() }
