package order

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsposters/storefront/internal/modules/cart"
	"github.com/cardsposters/storefront/internal/modules/catalog"
	"github.com/cardsposters/storefront/internal/modules/profile"
)

type stubCart struct {
	items []cart.Item
}

func (s *stubCart) Items() []cart.Item { return s.items }

type stubProfiles struct {
	profile *profile.UserProfile
}

func (s *stubProfiles) Current() (profile.UserProfile, bool) {
	if s.profile == nil {
		return profile.UserProfile{}, false
	}
	return *s.profile, true
}

func TestServicePlaceOrder(t *testing.T) {
	t.Parallel()

	items := []cart.Item{
		{Product: catalog.Product{ID: "px", Name: "Poster X", Price: 20, ImageURL: "u1"}, Quantity: 2},
		{Product: catalog.Product{ID: "py", Name: "Poster Y", Price: 20, ImageURL: "u2"}, Quantity: 1},
	}
	buyer := &profile.UserProfile{Name: "Jane", Department: "CS", Section: "A"}

	t.Run("missing profile is rejected before any formatting", func(t *testing.T) {
		t.Parallel()

		c := &stubCart{items: items}
		svc := NewService(c, &stubProfiles{}, "918015213825", 20)

		handoff, err := svc.PlaceOrder()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProfileRequired)
		assert.Nil(t, handoff)
	})

	t.Run("builds message, total and hand-off uri", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&stubCart{items: items}, &stubProfiles{profile: buyer}, "918015213825", 20)

		handoff, err := svc.PlaceOrder()
		require.NoError(t, err)

		_, err = uuid.Parse(handoff.ID)
		require.NoError(t, err, "hand-off id must be a valid uuid")
		assert.Equal(t, 60, handoff.Total)
		assert.Contains(t, handoff.Message, "- Poster X (2x) - u1")
		assert.Contains(t, handoff.Message, "- Poster Y (1x) - u2")
		assert.Contains(t, handoff.Message, "Total: ₹60")
		assert.Contains(t, handoff.URI, "https://wa.me/918015213825?text=")
	})

	t.Run("empty cart yields a degenerate zero-total hand-off", func(t *testing.T) {
		t.Parallel()

		svc := NewService(&stubCart{}, &stubProfiles{profile: buyer}, "918015213825", 20)

		handoff, err := svc.PlaceOrder()
		require.NoError(t, err)
		assert.Zero(t, handoff.Total)
		assert.Contains(t, handoff.Message, "Total: ₹0")
	})
}

func TestServiceInquiry(t *testing.T) {
	t.Parallel()

	svc := NewService(&stubCart{}, &stubProfiles{}, "918015213825", 20)

	handoff := svc.Inquiry()
	assert.Equal(t, "Hi, I want to order customized cards.", handoff.Message)
	assert.Contains(t, handoff.URI, "https://wa.me/918015213825?text=")
	assert.Zero(t, handoff.Total)
}
