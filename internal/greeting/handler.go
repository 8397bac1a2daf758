package greeting

import (
	"encoding/json"
	"net/http"

	"user-api/internal/httpx"
	"user-api/internal/models"
)

// Handler holds greeting HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Get handles GET /api/hello.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	text, err := h.svc.Get(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to load greeting")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, models.GreetingResponse{Message: text})
}

// Update handles POST /api/hello.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateGreetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.svc.Set(r.Context(), req.NewValue)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to update greeting")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, models.GreetingResponse{Message: text})
}
