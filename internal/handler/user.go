package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/httputil"
	"wingman_admin/internal/mutation"
)

// UserHandler forwards user mutations through the coordinator.
type UserHandler struct {
	coordinator *mutation.Coordinator
}

func NewUserHandler(coordinator *mutation.Coordinator) *UserHandler {
	return &UserHandler{coordinator: coordinator}
}

// ToggleStatus flips a user between active and deactivated
// PUT /api/users/{id}/toggle-status
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	msg, err := h.coordinator.ToggleUserStatus(r.Context(), actorFrom(r), id)
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}
