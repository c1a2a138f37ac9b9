package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"wingman_admin/internal/fetch"
	"wingman_admin/internal/model"
	"wingman_admin/internal/store"
)

func boolPtr(b bool) *bool { return &b }

func seedStore() *store.Store {
	st := store.New()
	st.ReplaceUsers([]model.User{
		{ID: "u1", Name: "Alice", SubscriptionTier: model.TierPro, IsActive: true},
		{ID: "u2", Name: "Bob", SubscriptionTier: model.TierFree, IsActive: false},
	})
	st.ReplaceVideos([]model.Video{
		{ID: "v1", Title: "Morning Routine", Platform: model.PlatformYouTube,
			Category: model.CategoryRef{ID: "c1"}, Views: 100,
			VideoURL: "https://youtu.be/dQw4w9WgXcQ"},
		{ID: "v2", Title: "Hidden", Platform: model.PlatformTikTok, IsActive: boolPtr(false)},
	})
	st.ReplaceCategories([]model.Category{
		{ID: "c1", Name: "Fitness", DisplayOrder: 1, IsActive: true},
	})
	st.SetStats(model.Stats{TotalUsers: 2, ActiveUsers: 1, TotalVideos: 2, TotalViews: 100})
	return st
}

func collectionRouter(st *store.Store) chi.Router {
	orchestrator := fetch.New(&mockBackend{}, st, nil)
	h := NewCollectionHandler(st, orchestrator)
	r := chi.NewRouter()
	r.Get("/api/dashboard/users", h.ListUsers)
	r.Get("/api/dashboard/videos", h.ListVideos)
	r.Get("/api/dashboard/categories", h.ListCategories)
	r.Post("/api/refresh/{kind}", h.Refresh)
	return r
}

func TestListVideos_FiltersAndEnriches(t *testing.T) {
	st := seedStore()
	router := collectionRouter(st)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/videos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Videos []model.VideoView `json:"videos"`
		Total  int               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// The explicitly inactive video is filtered out of the view
	if len(resp.Videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(resp.Videos))
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want the unfiltered count 2", resp.Total)
	}
	v := resp.Videos[0]
	if v.ID != "v1" {
		t.Errorf("id = %s", v.ID)
	}
	if v.CategoryName != "Fitness" {
		t.Errorf("categoryName = %q, want resolved through the lookup", v.CategoryName)
	}
	if v.EmbedID != "dQw4w9WgXcQ" {
		t.Errorf("embedId = %q", v.EmbedID)
	}
}

func TestListUsers_QueryFilters(t *testing.T) {
	router := collectionRouter(seedStore())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/users?tier=pro&status=active", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp struct {
		Users []model.User `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].ID != "u1" {
		t.Errorf("users = %v, want just u1", resp.Users)
	}
}

func TestRefresh_UnknownKind(t *testing.T) {
	router := collectionRouter(seedStore())

	req := httptest.NewRequest(http.MethodPost, "/api/refresh/payments", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRefresh_KnownKind(t *testing.T) {
	st := seedStore()
	router := collectionRouter(st)

	req := httptest.NewRequest(http.MethodPost, "/api/refresh/videos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	// The backend returned an empty collection; the snapshot was replaced
	if len(st.Videos()) != 0 {
		t.Errorf("got %d videos after refresh, want 0", len(st.Videos()))
	}
}

func TestOverview(t *testing.T) {
	st := seedStore()
	h := NewOverviewHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/overview", nil)
	rec := httptest.NewRecorder()
	h.Overview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp model.OverviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	if resp.Stats.TotalUsers != 2 {
		t.Errorf("stats.totalUsers = %d, want 2", resp.Stats.TotalUsers)
	}
	if resp.ConversionRate != 50 {
		t.Errorf("conversionRate = %d, want 50", resp.ConversionRate)
	}
	if resp.TierBreakdown[model.TierPro] != 1 || resp.TierBreakdown[model.TierFree] != 1 {
		t.Errorf("tierBreakdown = %v", resp.TierBreakdown)
	}
	if resp.VideosPerCategory["c1"] != 1 {
		t.Errorf("videosPerCategory = %v", resp.VideosPerCategory)
	}
	if len(resp.TopVideos) != 1 || resp.TopVideos[0].ID != "v1" {
		t.Errorf("topVideos = %v, want just the active v1", resp.TopVideos)
	}
	if len(resp.RecentUsers) != 2 {
		t.Errorf("recentUsers = %d entries, want 2", len(resp.RecentUsers))
	}
}
