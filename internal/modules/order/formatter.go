package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/samber/lo"

	"github.com/cardsposters/storefront/internal/modules/cart"
	"github.com/cardsposters/storefront/internal/modules/profile"
)

// InquiryMessage is the fixed call-to-action template, carrying no cart or
// profile data.
const InquiryMessage = "Hi, I want to order customized cards."

// BuildOrderMessage renders the deterministic order summary handed off to the
// messaging app. One line per cart item in cart order, then the fixed-format
// pricing block and the buyer's details. An empty cart yields a degenerate
// zero-total message rather than an error.
func BuildOrderMessage(items []cart.Item, p profile.UserProfile, pricePerUnit int) string {
	lines := lo.Map(items, func(it cart.Item, _ int) string {
		return fmt.Sprintf("- %s (%dx) - %s", it.Name, it.Quantity, it.ImageURL)
	})
	total := lo.SumBy(items, func(it cart.Item) int { return it.Price * it.Quantity })

	return fmt.Sprintf(`Hi, I want to place an order.

Selected Cards:
%s

Price: ₹%d per photo
Total: ₹%d

Customer Details:
Name: %s
Department: %s
Section: %s`,
		strings.Join(lines, "\n"), pricePerUnit, total,
		p.Name, p.Department, p.Section)
}

// HandoffURI builds the wa.me link that delegates the message to the external
// messaging app. The hand-off is fire and forget: the contract ends once the
// URI is constructed.
func HandoffURI(number, message string) string {
	q := url.Values{"text": {message}}
	return fmt.Sprintf("https://wa.me/%s?%s", number, q.Encode())
}
