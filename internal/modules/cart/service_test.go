package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsposters/storefront/internal/modules/catalog"
)

func TestServiceAddProduct(t *testing.T) {
	t.Parallel()

	cat := catalog.NewService(catalog.NewIndex(posterX, posterY))
	svc := NewService(NewStore(), cat)

	t.Run("resolves the catalogue product before adding", func(t *testing.T) {
		snap, err := svc.AddProduct("px")
		require.NoError(t, err)
		require.Len(t, snap.Items, 1)
		assert.Equal(t, "Poster X", snap.Items[0].Name)
		assert.Equal(t, 50, snap.Total)
	})

	t.Run("unknown id is rejected and leaves the cart untouched", func(t *testing.T) {
		snap, err := svc.AddProduct("ghost")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProductNotFound)
		assert.Len(t, snap.Items, 1)
	})
}

func TestServiceLifecycle(t *testing.T) {
	t.Parallel()

	cat := catalog.NewService(catalog.NewIndex(posterX, posterY))
	svc := NewService(NewStore(), cat)

	_, err := svc.AddProduct("px")
	require.NoError(t, err)
	_, err = svc.AddProduct("py")
	require.NoError(t, err)

	snap := svc.UpdateQuantity("px", 2)
	assert.Equal(t, 120, snap.Total)

	snap = svc.RemoveItem("py")
	assert.Equal(t, 100, snap.Total)

	snap = svc.Clear()
	assert.Empty(t, snap.Items)
	assert.Zero(t, snap.Total)
}
