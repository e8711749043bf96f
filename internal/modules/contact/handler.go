package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes contact-form HTTP endpoints.
type Handler struct{ service *Service }

func NewHandler(service *Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/contact", func(r chi.Router) {
		r.Post("/", h.submit)
		r.Get("/status", h.status)
	})
}

// SubmitResponse echoes the rendered inquiry alongside the acknowledgment
// state.
type SubmitResponse struct {
	Inquiry string `json:"inquiry"`
	Sent    bool   `json:"sent"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var q Inquiry
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rendered, err := h.service.Submit(q)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, SubmitResponse{Inquiry: rendered, Sent: h.service.Sent()})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, Status{Sent: h.service.Sent()})
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
