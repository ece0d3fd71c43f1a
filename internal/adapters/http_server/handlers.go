// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"dealership/internal/app"
)

type Handlers struct{ D *app.DealerService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// reviews bigger than this are rejected before reaching the backend
const maxReviewBody = 1 << 20

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/djangoapp", func(r chi.Router) {
		r.Get("/get_dealers", h.getDealers)
		r.Get("/get_dealers/{state}", h.getDealers)
		r.Get("/dealer/{id}", h.getDealer)
		r.Get("/reviews/dealer/{id}", h.getDealerReviews)
		r.Post("/add_review", h.addReview)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func dealerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return 0, false
	}
	return id, true
}

func (h *Handlers) getDealers(w http.ResponseWriter, r *http.Request) {
	dealers := h.D.ListDealers(r.Context(), chi.URLParam(r, "state"))
	writeJSON(w, map[string]any{"status": 200, "dealers": dealers})
}

func (h *Handlers) getDealer(w http.ResponseWriter, r *http.Request) {
	id, ok := dealerID(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{"status": 200, "dealer": h.D.GetDealer(r.Context(), id)})
}

func (h *Handlers) getDealerReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := dealerID(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]any{"status": 200, "reviews": h.D.DealerReviews(r.Context(), id)})
}

func (h *Handlers) addReview(w http.ResponseWriter, r *http.Request) {
	var review map[string]any
	dec := json.NewDecoder(io.LimitReader(r.Body, maxReviewBody))
	// exactly one JSON object; anything but whitespace after it is rejected
	if err := dec.Decode(&review); err != nil || review == nil || dec.Decode(&json.RawMessage{}) != io.EOF {
		writeProblem(w, http.StatusBadRequest, "Invalid review", "body must be a JSON object")
		return
	}
	// the outcome is reported in the body; the HTTP status stays 200
	if _, ok := h.D.AddReview(r.Context(), review); !ok {
		writeJSON(w, map[string]any{"status": 401, "message": "Error in posting review"})
		return
	}
	writeJSON(w, map[string]any{"status": 200})
}
