package handler

import (
	"net/http"

	"wingman_admin/internal/derive"
	"wingman_admin/internal/httputil"
	"wingman_admin/internal/model"
	"wingman_admin/internal/store"
)

const (
	topVideosCount   = 5
	recentUsersCount = 5
)

// OverviewHandler serves the overview tab entirely from the in-memory store.
type OverviewHandler struct {
	store *store.Store
}

func NewOverviewHandler(st *store.Store) *OverviewHandler {
	return &OverviewHandler{store: st}
}

// Overview returns the derived overview payload
// GET /api/dashboard/overview
func (h *OverviewHandler) Overview(w http.ResponseWriter, r *http.Request) {
	users := h.store.Users()
	videos := h.store.Videos()
	categories := h.store.Categories()
	stats := h.store.Stats()

	activeVideos := derive.FilterVideos(videos, derive.VideoFilter{})
	lookup := derive.BuildCategoryLookup(categories)

	resp := model.OverviewResponse{
		Stats:             stats,
		ConversionRate:    derive.ConversionRate(stats),
		TierBreakdown:     derive.TierBreakdown(users),
		StatusBreakdown:   derive.StatusBreakdown(users),
		PlatformBreakdown: derive.PlatformBreakdown(videos),
		VideosPerCategory: derive.CountVideosByCategory(videos),
		RecentUsers:       derive.RecentUsers(users, recentUsersCount),
		TopVideos:         toVideoViews(derive.TopVideosByViews(activeVideos, topVideosCount), lookup),
	}

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// toVideoViews resolves each video's category name and embed id for display.
func toVideoViews(videos []model.Video, lookup map[string]model.Category) []model.VideoView {
	views := make([]model.VideoView, 0, len(videos))
	for _, v := range videos {
		view := model.VideoView{Video: v, EmbedID: derive.EmbedID(v)}
		if cat, ok := lookup[v.Category.CategoryID()]; ok {
			view.CategoryName = cat.Name
		}
		views = append(views, view)
	}
	return views
}
