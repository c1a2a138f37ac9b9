package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/mutation"
)

// CategoryHandler forwards category mutations through the coordinator.
type CategoryHandler struct {
	coordinator *mutation.Coordinator
}

func NewCategoryHandler(coordinator *mutation.Coordinator) *CategoryHandler {
	return &CategoryHandler{coordinator: coordinator}
}

// Create adds a category
// POST /api/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.coordinator.CreateCategory(r.Context(), actorFrom(r), in)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]string{"message": msg})
}

// Update forwards a partial category edit
// PUT /api/categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var in model.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.coordinator.UpdateCategory(r.Context(), actorFrom(r), id, in)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// ToggleStatus flips a category between active and inactive
// PUT /api/categories/{id}/toggle-status
func (h *CategoryHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.coordinator.ToggleCategoryStatus(r.Context(), actorFrom(r), id)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
