package handler

import (
	"log"
	"net/http"
	"strconv"

	"wingman_admin/internal/httputil"
	"wingman_admin/internal/repository"
)

const defaultAuditLimit = 50

// AuditHandler lists recent admin actions from the audit trail.
type AuditHandler struct {
	auditRepo repository.AuditRepository
}

func NewAuditHandler(auditRepo repository.AuditRepository) *AuditHandler {
	return &AuditHandler{auditRepo: auditRepo}
}

// List returns the most recent audit entries
// GET /api/audit?limit=
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultAuditLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > 500 {
			httputil.WriteBadRequest(w, "Limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	entries, err := h.auditRepo.List(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] List audit handler: %v", err)
		httputil.WriteInternalError(w, "Failed to load audit trail")
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}
