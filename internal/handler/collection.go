package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/derive"
	"wingman_admin/internal/fetch"
	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/store"
)

// CollectionHandler serves the five collection tabs from the in-memory store
// and exposes the refresh endpoints that re-pull from the backend.
type CollectionHandler struct {
	store        *store.Store
	orchestrator *fetch.Orchestrator
}

func NewCollectionHandler(st *store.Store, orchestrator *fetch.Orchestrator) *CollectionHandler {
	return &CollectionHandler{
		store:        st,
		orchestrator: orchestrator,
	}
}

// ListUsers returns the filtered user snapshot
// GET /api/dashboard/users?search=&tier=&status=
func (h *CollectionHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := derive.UserFilter{
		SearchTerm: q.Get("search"),
		Tier:       q.Get("tier"),
		Status:     q.Get("status"),
	}

	users := derive.FilterUsers(h.store.Users(), filter)
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"users": users,
		"total": len(h.store.Users()),
	})
}

// ListVideos returns the filtered, display-ready video snapshot
// GET /api/dashboard/videos?search=&platform=
func (h *CollectionHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := derive.VideoFilter{
		SearchTerm: q.Get("search"),
		Platform:   q.Get("platform"),
	}

	videos := derive.FilterVideos(h.store.Videos(), filter)
	lookup := derive.BuildCategoryLookup(h.store.Categories())
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"videos": toVideoViews(videos, lookup),
		"total":  len(h.store.Videos()),
	})
}

// ListCategories returns categories ordered for display
// GET /api/dashboard/categories?status=
func (h *CollectionHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	counts := derive.CountVideosByCategory(h.store.Videos())

	categories := derive.FilterCategories(h.store.Categories(), status)
	type categoryView struct {
		model.Category
		VideoCount int `json:"videoCount"`
	}
	views := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, categoryView{Category: c, VideoCount: counts[c.ID]})
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": views,
	})
}

// ListSupport returns the support request snapshot
// GET /api/dashboard/support
func (h *CollectionHandler) ListSupport(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"requests": h.store.Support(),
	})
}

// ListFeedback returns the feedback snapshot
// GET /api/dashboard/feedback
func (h *CollectionHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"entries": h.store.Feedback(),
	})
}

// RefreshAll re-pulls every collection from the backend
// POST /api/refresh
func (h *CollectionHandler) RefreshAll(w http.ResponseWriter, r *http.Request) {
	if msg := h.orchestrator.LoadAll(r.Context()); msg != "" {
		httputil.WriteInternalError(w, msg)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Refresh re-pulls one collection. A refresh already in flight for the same
// kind is a no-op and still answers ok.
// POST /api/refresh/{kind}
func (h *CollectionHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		httputil.WriteBadRequest(w, "Unknown collection kind")
		return
	}

	if msg := h.orchestrator.Refresh(r.Context(), kind); msg != "" {
		httputil.WriteInternalError(w, msg)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
