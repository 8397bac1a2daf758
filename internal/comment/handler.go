package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"user-api/internal/httpx"
	"user-api/internal/models"
	"user-api/internal/store"
)

// Handler holds comment HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/comments.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == "" || req.Text == "" {
		httpx.WriteError(w, http.StatusBadRequest, "userId and text are required")
		return
	}

	comment, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create comment")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, comment)
}

// ListByUser handles GET /api/comments/user/{userId}.
func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	comments, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to retrieve comments")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, comments)
}

// Delete handles DELETE /api/comments/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Comment with ID "+id+" not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment with ID " + id + " deleted successfully"})
}
