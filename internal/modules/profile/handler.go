package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes profile HTTP endpoints.
type Handler struct{ store *Store }

func NewHandler(store *Store) *Handler { return &Handler{store: store} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/profile", func(r chi.Router) {
		r.Get("/", h.getProfile)
		r.Put("/", h.saveProfile)
	})
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := h.store.Current()
	if !ok {
		http.Error(w, "no profile saved", http.StatusNotFound)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var p UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.store.Save(p); err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// Echo what the store holds, not the raw request: Save normalizes the
	// record (e.g. a nil orderHistory becomes []).
	saved, _ := h.store.Current()
	respond(w, http.StatusOK, saved)
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
