package profile

import (
	"errors"
	"time"

	"github.com/cardsposters/storefront/internal/modules/cart"
)

var (
	// ErrValidation is returned when a required profile field is blank.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned by a repository when no profile has been saved.
	ErrNotFound = errors.New("profile not found")
)

// UserProfile is the single buyer identity persisted on this device. It is
// used only to populate outbound order messages. The JSON field names are the
// on-disk schema and must stay stable across releases.
type UserProfile struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Section    string `json:"section"`
	// OrderHistory is part of the persisted schema for compatibility; no
	// current flow appends to it.
	OrderHistory []OrderRecord `json:"orderHistory"`
}

// OrderRecord is a snapshot of a placed order.
type OrderRecord struct {
	ID    string      `json:"id"`
	Date  time.Time   `json:"date"`
	Total int         `json:"total"`
	Items []cart.Item `json:"items"`
}
