package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/export"
	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/repository"
	"wingman_admin/internal/store"
)

// ExportHandler renders the current snapshot as CSV and hands back the
// uploaded object's public URL.
type ExportHandler struct {
	store         *store.Store
	exportService *export.Service
	auditRepo     repository.AuditRepository // nil disables export auditing
}

func NewExportHandler(st *store.Store, exportService *export.Service, auditRepo repository.AuditRepository) *ExportHandler {
	return &ExportHandler{
		store:         st,
		exportService: exportService,
		auditRepo:     auditRepo,
	}
}

// Export uploads a CSV of the requested collection
// POST /api/export/{kind}
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteBadRequest(w, "Unknown collection kind")
		return
	}

	var result *model.ExportResult
	switch kind {
	case model.KindUsers:
		result, err = h.exportService.ExportUsers(r.Context(), h.store.Users())
	case model.KindVideos:
		result, err = h.exportService.ExportVideos(r.Context(), h.store.Videos())
	default:
		httputil.WriteBadRequest(w, "Only users and videos can be exported")
		return
	}

	if err != nil {
		log.Printf("[ERROR] Export handler: %v", err)
		httputil.WriteInternalError(w, "Failed to generate export")
		return
	}

	if h.auditRepo != nil {
		entry := &model.AuditEntry{
			Actor:      actorFrom(r),
			Action:     model.AuditExportGenerated,
			EntityKind: string(kind),
			Detail:     &result.Key,
		}
		if auditErr := h.auditRepo.Record(r.Context(), entry); auditErr != nil {
			log.Printf("[ERROR] Export audit record: %v", auditErr)
		}
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}
