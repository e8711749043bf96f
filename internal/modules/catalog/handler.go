package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes catalogue HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/categories", h.listCategories)
		r.Get("/pricing", h.listPricing)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := Category(r.URL.Query().Get("category"))
	query := r.URL.Query().Get("q")
	respond(w, http.StatusOK, h.service.ListProducts(category, query))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Categories())
}

func (h *Handler) listPricing(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.PriceTiers())
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
