package order

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes order hand-off HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Post("/whatsapp", h.placeOrder)
		r.Get("/inquiry", h.inquiry)
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	handoff, err := h.service.PlaceOrder()
	if err != nil {
		if errors.Is(err, ErrProfileRequired) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, handoff)
}

func (h *Handler) inquiry(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.service.Inquiry())
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
