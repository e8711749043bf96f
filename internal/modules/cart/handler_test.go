package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardsposters/storefront/internal/modules/catalog"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	cat := catalog.NewService(catalog.NewIndex(posterX, posterY))
	router := chi.NewRouter()
	NewHandler(NewService(NewStore(), cat)).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *chi.Mux, method, path, body string) (*httptest.ResponseRecorder, Snapshot) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var snap Snapshot
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	}
	return rec, snap
}

func TestHandlerCartFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, snap := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"px"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, snap.Count)

	rec, snap = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"px"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)

	rec, snap = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/px", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snap.Items)
}

func TestHandlerAddUnknownProduct(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"ghost"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerGetAndClear(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	_, _ = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", `{"product_id":"py"}`)

	rec, snap := doJSON(t, router, http.MethodGet, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20, snap.Total)

	rec, snap = doJSON(t, router, http.MethodDelete, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, snap.Items)
}
