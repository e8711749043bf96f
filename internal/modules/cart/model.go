package cart

import (
	"errors"

	"github.com/cardsposters/storefront/internal/modules/catalog"
)

// ErrProductNotFound is returned when an add references an unknown catalogue id.
var ErrProductNotFound = errors.New("product not found")

// Item is a catalogue product plus the quantity selected by the buyer.
// Quantity is always >= 1 for any item present in the cart; an item whose
// quantity would drop to zero or below is removed instead.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Snapshot is a consistent read of the whole cart.
type Snapshot struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
	Count int    `json:"count"`
}
