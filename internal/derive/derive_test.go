package derive

import (
	"testing"
	"time"

	"wingman_admin/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func timePtr(t time.Time) *time.Time { return &t }

// =============================================================================
// STATS
// =============================================================================

func TestComputeStats(t *testing.T) {
	users := []model.User{
		{ID: "u1", IsActive: true},
		{ID: "u2", IsActive: false},
		{ID: "u3", IsActive: true},
	}
	videos := []model.Video{
		{ID: "v1", Views: 100, Likes: 10},
		{ID: "v2", Views: 50, Likes: 5},
		{ID: "v3"}, // counts missing from the payload contribute zero
	}

	stats := ComputeStats(users, videos)

	if stats.TotalUsers != 3 {
		t.Errorf("TotalUsers = %d, want 3", stats.TotalUsers)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("ActiveUsers = %d, want 2", stats.ActiveUsers)
	}
	if stats.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d, want 3", stats.TotalVideos)
	}
	if stats.TotalViews != 150 {
		t.Errorf("TotalViews = %d, want 150", stats.TotalViews)
	}
	if stats.TotalLikes != 15 {
		t.Errorf("TotalLikes = %d, want 15", stats.TotalLikes)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, nil)

	if stats != (model.Stats{}) {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name   string
		active int
		total  int
		want   int
	}{
		{"zero users", 0, 0, 0},
		{"all active", 4, 4, 100},
		{"half", 1, 2, 50},
		{"rounds up", 2, 3, 67},
		{"rounds down", 1, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConversionRate(model.Stats{ActiveUsers: tt.active, TotalUsers: tt.total})
			if got != tt.want {
				t.Errorf("ConversionRate(%d/%d) = %d, want %d", tt.active, tt.total, got, tt.want)
			}
		})
	}
}

// =============================================================================
// VIDEO FILTERING
// =============================================================================

func TestFilterVideos_DefaultActivePolicy(t *testing.T) {
	videos := []model.Video{
		{ID: "v1", Title: "explicitly active", IsActive: boolPtr(true)},
		{ID: "v2", Title: "explicitly inactive", IsActive: boolPtr(false)},
		{ID: "v3", Title: "flag missing"}, // absence counts as active
	}

	got := FilterVideos(videos, VideoFilter{})

	if len(got) != 2 {
		t.Fatalf("got %d videos, want 2", len(got))
	}
	if got[0].ID != "v1" || got[1].ID != "v3" {
		t.Errorf("got ids %s, %s; want v1, v3", got[0].ID, got[1].ID)
	}
}

func TestFilterVideos_PlatformAndSearch(t *testing.T) {
	videos := []model.Video{
		{ID: "v1", Title: "Morning Routine", Platform: model.PlatformYouTube},
		{ID: "v2", Title: "Gym Tips", Description: "morning workout", Platform: model.PlatformTikTok},
		{ID: "v3", Title: "Cooking", Platform: model.PlatformYouTube},
	}

	got := FilterVideos(videos, VideoFilter{SearchTerm: "MORNING"})
	if len(got) != 2 {
		t.Fatalf("search: got %d videos, want 2 (title and description matches)", len(got))
	}

	got = FilterVideos(videos, VideoFilter{Platform: model.PlatformYouTube})
	if len(got) != 2 {
		t.Fatalf("platform: got %d videos, want 2", len(got))
	}

	got = FilterVideos(videos, VideoFilter{SearchTerm: "morning", Platform: model.PlatformTikTok})
	if len(got) != 1 || got[0].ID != "v2" {
		t.Fatalf("combined: got %v, want just v2", got)
	}

	// "all" and empty string behave identically
	if len(FilterVideos(videos, VideoFilter{Platform: FilterAll})) != len(FilterVideos(videos, VideoFilter{})) {
		t.Error("platform \"all\" should match the unset filter")
	}
}

func TestFilterVideos_Idempotent(t *testing.T) {
	videos := []model.Video{
		{ID: "v1", Title: "alpha"},
		{ID: "v2", Title: "beta", IsActive: boolPtr(false)},
		{ID: "v3", Title: "alpha two"},
	}
	f := VideoFilter{SearchTerm: "alpha"}

	once := FilterVideos(videos, f)
	twice := FilterVideos(once, f)

	if len(once) != len(twice) {
		t.Fatalf("filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("index %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

// =============================================================================
// USER FILTERING
// =============================================================================

func TestFilterUsers(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Alice", UserGoal: "confidence", SubscriptionTier: model.TierPro, IsActive: true},
		{ID: "u2", Name: "Bob", UserGoal: "dating", SubscriptionTier: model.TierFree, IsActive: false},
		{ID: "u3", Name: "Carol", UserGoal: "Confidence boost", SubscriptionTier: "enterprise", IsActive: true},
	}

	got := FilterUsers(users, UserFilter{SearchTerm: "confidence"})
	if len(got) != 2 {
		t.Fatalf("search by goal: got %d, want 2", len(got))
	}

	got = FilterUsers(users, UserFilter{Tier: model.TierPro})
	if len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("tier filter: got %v, want just u1", got)
	}

	// unrecognized tiers normalize to "other"
	got = FilterUsers(users, UserFilter{Tier: model.TierOther})
	if len(got) != 1 || got[0].ID != "u3" {
		t.Fatalf("other tier: got %v, want just u3", got)
	}

	got = FilterUsers(users, UserFilter{Status: "inactive"})
	if len(got) != 1 || got[0].ID != "u2" {
		t.Fatalf("status filter: got %v, want just u2", got)
	}

	got = FilterUsers(users, UserFilter{Status: FilterAll, Tier: FilterAll})
	if len(got) != 3 {
		t.Fatalf("all filters wildcard: got %d, want 3", len(got))
	}
}

// =============================================================================
// CATEGORIES
// =============================================================================

func TestFilterCategories_StableDisplayOrder(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Zeta", DisplayOrder: 2, IsActive: true},
		{ID: "c2", Name: "Alpha", DisplayOrder: 1, IsActive: true},
		{ID: "c3", Name: "Mid", DisplayOrder: 2, IsActive: false},
		{ID: "c4", Name: "Tied", DisplayOrder: 2, IsActive: true},
	}

	got := FilterCategories(categories, "")
	wantOrder := []string{"c2", "c1", "c3", "c4"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Fatalf("position %d = %s, want %s (stable sort by display order)", i, got[i].ID, id)
		}
	}

	active := FilterCategories(categories, "active")
	if len(active) != 3 {
		t.Errorf("active filter: got %d, want 3", len(active))
	}
	inactive := FilterCategories(categories, "inactive")
	if len(inactive) != 1 || inactive[0].ID != "c3" {
		t.Errorf("inactive filter: got %v, want just c3", inactive)
	}
}

func TestCountVideosByCategory_BothReferenceForms(t *testing.T) {
	videos := []model.Video{
		{ID: "v1", Category: model.CategoryRef{ID: "c1"}},
		{ID: "v2", Category: model.CategoryRef{Embedded: &model.Category{ID: "c1", Name: "Fitness"}}},
		{ID: "v3", Category: model.CategoryRef{ID: "c2"}},
		{ID: "v4"}, // no category, contributes to no bucket
	}

	counts := CountVideosByCategory(videos)

	if counts["c1"] != 2 {
		t.Errorf("c1 = %d, want 2 (bare id and embedded object share the bucket)", counts["c1"])
	}
	if counts["c2"] != 1 {
		t.Errorf("c2 = %d, want 1", counts["c2"])
	}
	if len(counts) != 2 {
		t.Errorf("got %d buckets, want 2", len(counts))
	}
}

// =============================================================================
// RANKINGS
// =============================================================================

func TestTopVideosByViews(t *testing.T) {
	videos := []model.Video{
		{ID: "v1", Views: 10},
		{ID: "v2", Views: 30},
		{ID: "v3", Views: 30}, // tie keeps original order
		{ID: "v4", Views: 20},
		{ID: "v5"}, // missing views sorts last
	}

	got := TopVideosByViews(videos, 3)

	if len(got) != 3 {
		t.Fatalf("got %d videos, want 3", len(got))
	}
	wantOrder := []string{"v2", "v3", "v4"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}

	// n larger than the collection returns everything
	if len(TopVideosByViews(videos, 100)) != 5 {
		t.Error("oversized n should return the whole collection")
	}

	// input order is untouched
	if videos[0].ID != "v1" {
		t.Error("input slice was reordered")
	}
}

func TestRecentUsers(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	users := []model.User{
		{ID: "u1", CreatedAt: timePtr(base.Add(1 * time.Hour))},
		{ID: "u2", CreatedAt: timePtr(base.Add(3 * time.Hour))},
		{ID: "u3", UpdatedAt: timePtr(base.Add(2 * time.Hour))}, // falls back to update time
		{ID: "u4"}, // no timestamps at all: treated as now, sorts first
	}

	got := RecentUsers(users, 3)

	if len(got) != 3 {
		t.Fatalf("got %d users, want 3", len(got))
	}
	wantOrder := []string{"u4", "u2", "u3"}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, got[i].ID, id)
		}
	}
}

// =============================================================================
// BREAKDOWNS
// =============================================================================

func TestTierBreakdown(t *testing.T) {
	users := []model.User{
		{SubscriptionTier: model.TierFree},
		{SubscriptionTier: model.TierFree},
		{SubscriptionTier: model.TierPremium},
		{SubscriptionTier: "lifetime"}, // unknown tier
		{},                             // missing tier
	}

	counts := TierBreakdown(users)

	if counts[model.TierFree] != 2 {
		t.Errorf("free = %d, want 2", counts[model.TierFree])
	}
	if counts[model.TierPremium] != 1 {
		t.Errorf("premium = %d, want 1", counts[model.TierPremium])
	}
	if counts[model.TierOther] != 2 {
		t.Errorf("other = %d, want 2 (unknown and missing both bucket there)", counts[model.TierOther])
	}
}

func TestStatusBreakdown(t *testing.T) {
	users := []model.User{
		{IsActive: true},
		{IsActive: false},
		{IsActive: true},
	}

	counts := StatusBreakdown(users)

	if counts["active"] != 2 || counts["inactive"] != 1 {
		t.Errorf("counts = %v, want active:2 inactive:1", counts)
	}
}

func TestPlatformBreakdown(t *testing.T) {
	videos := []model.Video{
		{Platform: model.PlatformYouTube},
		{Platform: model.PlatformYouTube},
		{Platform: model.PlatformTikTok},
		{Platform: "dailymotion"}, // unknown platform
		{},                        // missing platform
	}

	counts := PlatformBreakdown(videos)

	if counts[model.PlatformYouTube] != 2 {
		t.Errorf("youtube = %d, want 2", counts[model.PlatformYouTube])
	}
	if counts[model.PlatformTikTok] != 1 {
		t.Errorf("tiktok = %d, want 1", counts[model.PlatformTikTok])
	}
	if counts[model.PlatformOther] != 2 {
		t.Errorf("other = %d, want 2", counts[model.PlatformOther])
	}
}

func TestBuildCategoryLookup(t *testing.T) {
	categories := []model.Category{
		{ID: "c1", Name: "Fitness"},
		{ID: "c2", Name: "Dating"},
	}

	lookup := BuildCategoryLookup(categories)

	if lookup["c1"].Name != "Fitness" || lookup["c2"].Name != "Dating" {
		t.Errorf("lookup = %v", lookup)
	}
	if _, ok := lookup["missing"]; ok {
		t.Error("unexpected entry for missing id")
	}
}
