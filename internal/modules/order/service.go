package order

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cardsposters/storefront/internal/logger"
	"github.com/cardsposters/storefront/internal/modules/cart"
	"github.com/cardsposters/storefront/internal/modules/profile"
)

// ErrProfileRequired is returned when an order is placed before a profile has
// been saved. The guard runs before any formatting happens.
var ErrProfileRequired = errors.New("profile required")

// CartReader is the slice of the cart store the order flow needs.
type CartReader interface {
	Items() []cart.Item
}

// ProfileReader is the slice of the profile store the order flow needs.
type ProfileReader interface {
	Current() (profile.UserProfile, bool)
}

// Handoff is a constructed message plus the URI that delegates it to the
// external messaging app. ID identifies the hand-off attempt; nothing is
// persisted under it.
type Handoff struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	URI     string `json:"uri"`
	Total   int    `json:"total"`
}

// Service builds outbound order hand-offs.
type Service interface {
	// PlaceOrder reads a consistent snapshot of cart and profile and builds
	// the order hand-off. Fails with ErrProfileRequired when no profile has
	// been saved.
	PlaceOrder() (*Handoff, error)

	// Inquiry builds the fixed "order inquiry" hand-off used by the
	// call-to-action entry point.
	Inquiry() Handoff
}

type service struct {
	cart          CartReader
	profiles      ProfileReader
	number        string
	pricePerPhoto int
}

// NewService creates an order service. number is the fixed hand-off
// recipient; pricePerPhoto is the quoted per-photo rate in rupees.
func NewService(c CartReader, p ProfileReader, number string, pricePerPhoto int) Service {
	return &service{cart: c, profiles: p, number: number, pricePerPhoto: pricePerPhoto}
}

func (s *service) PlaceOrder() (*Handoff, error) {
	const op = "order.service.PlaceOrder"

	buyer, ok := s.profiles.Current()
	if !ok {
		logger.Warn("order attempted without a saved profile")
		return nil, fmt.Errorf("%s: %w", op, ErrProfileRequired)
	}

	items := s.cart.Items()
	message := BuildOrderMessage(items, buyer, s.pricePerPhoto)

	var total int
	for _, it := range items {
		total += it.Price * it.Quantity
	}

	id := uuid.New().String()
	logger.Info("order hand-off built",
		logger.String("handoff_id", id),
		logger.Int("items", len(items)),
		logger.Int("total", total),
	)
	return &Handoff{
		ID:      id,
		Message: message,
		URI:     HandoffURI(s.number, message),
		Total:   total,
	}, nil
}

func (s *service) Inquiry() Handoff {
	return Handoff{
		Message: InquiryMessage,
		URI:     HandoffURI(s.number, InquiryMessage),
	}
}
