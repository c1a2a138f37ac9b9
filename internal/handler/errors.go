package handler

import (
	"errors"
	"net/http"

	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/mutation"
	"wingman_admin/internal/transport/http/middleware"
)

// writeMutationError maps coordinator errors onto the response envelope.
// Session expiry keeps its code so the SPA knows to log out.
func writeMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrSessionExpired):
		httputil.WriteUnauthorizedWithCode(w, model.CodeSessionExpired, "Session expired. Please log in again.")
	case errors.Is(err, model.ErrOperationInFlight):
		httputil.WriteConflict(w, "Another operation is already in progress")
	case errors.Is(err, model.ErrVideoTitleRequired):
		httputil.WriteBadRequest(w, "Video title is required")
	case errors.Is(err, model.ErrVideoURLRequired):
		httputil.WriteBadRequest(w, "Video URL is required")
	case errors.Is(err, model.ErrInvalidVideoURL):
		httputil.WriteBadRequest(w, "Video URL does not match the selected platform")
	case errors.Is(err, model.ErrCategoryNameRequired):
		httputil.WriteBadRequest(w, "Category name is required")
	case errors.Is(err, model.ErrCategoryNotFound):
		httputil.WriteNotFound(w, "Category not found")
	case errors.Is(err, model.ErrUserNotFound):
		httputil.WriteNotFound(w, "User not found")
	case errors.Is(err, model.ErrVideoNotFound):
		httputil.WriteNotFound(w, "Video not found")
	case errors.Is(err, model.ErrDeleteUnsupported):
		httputil.WriteBadRequest(w, "This collection does not support delete")
	case errors.Is(err, model.ErrNoDeleteStaged):
		httputil.WriteBadRequest(w, "No delete is staged")
	default:
		httputil.WriteInternalError(w, mutation.UserMessage(err))
	}
}

// actorFrom names the operator for audit entries and change events.
func actorFrom(r *http.Request) string {
	if admin, ok := middleware.GetAdminFromContext(r.Context()); ok {
		return admin.Email
	}
	return ""
}
