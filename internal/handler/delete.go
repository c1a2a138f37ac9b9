package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/mutation"
)

// DeleteHandler exposes the two-phase delete flow: stage, then confirm or
// cancel. Nothing touches the backend until confirm.
type DeleteHandler struct {
	coordinator *mutation.Coordinator
}

func NewDeleteHandler(coordinator *mutation.Coordinator) *DeleteHandler {
	return &DeleteHandler{coordinator: coordinator}
}

// Request stages a delete for confirmation
// POST /api/delete/{kind}/{id}
func (h *DeleteHandler) Request(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteBadRequest(w, "Unknown collection kind")
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		httputil.WriteBadRequest(w, "Entity id is required")
		return
	}

	if err := h.coordinator.RequestDelete(kind, id); err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"staged": map[string]string{"kind": string(kind), "id": id},
	})
}

// Staged reports the pending delete, if any
// GET /api/delete
func (h *DeleteHandler) Staged(w http.ResponseWriter, r *http.Request) {
	kind, id, ok := h.coordinator.StagedDelete()
	if !ok {
		httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{"staged": nil})
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"staged": map[string]string{"kind": string(kind), "id": id},
	})
}

// Confirm executes the staged delete
// POST /api/delete/confirm
func (h *DeleteHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	msg, err := h.coordinator.ConfirmDelete(r.Context(), actorFrom(r))
	if err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Cancel discards the staged delete without any network call
// POST /api/delete/cancel
func (h *DeleteHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.coordinator.CancelDelete(); err != nil {
		writeMutationError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]string{"message": "Delete cancelled"})
}
