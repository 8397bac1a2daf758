package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"user-api/internal/httpx"
	"user-api/internal/models"
	"user-api/internal/store"
)

// Handler holds user HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/users.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	user, err := h.svc.Create(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, user)
}

// List handles GET /api/users with page/limit/sort query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", 10)
	sort := r.URL.Query().Get("sort")
	if sort == "" {
		sort = "asc"
	}

	result, err := h.svc.List(r.Context(), page, limit, sort)
	if err != nil {
		httpx.WriteJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error retrieving users",
			"error":   err.Error(),
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, result)
}

// Get handles GET /api/users/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeUserError(w, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

// Patch handles PATCH /api/users/{id}: merges only the supplied fields.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Patch(r.Context(), id, patch)
	if err != nil {
		h.writeUserError(w, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

// Update handles PUT /api/users/{id}: the body is the complete new state, and
// omitted fields are nulled rather than kept.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch models.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		h.writeUserError(w, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /api/users/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeUserError(w, id, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "User with ID " + id + " deleted successfully"})
}

func (h *Handler) writeUserError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "User with ID "+id+" not found")
		return
	}
	httpx.WriteError(w, http.StatusInternalServerError, err.Error())
}

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return def
	}
	return n
}
