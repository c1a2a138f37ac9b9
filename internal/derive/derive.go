// Package derive computes every dashboard-visible fact from the raw
// collection snapshots plus the caller's filter state. All functions are pure
// and deterministic: same inputs, same outputs, no hidden state, no errors.
// Missing or malformed fields degrade to safe defaults (zero counts, "other"
// buckets) instead of failing, and everything runs in a single pass or one
// stable sort so it stays cheap enough to run on every keystroke.
package derive

import (
	"sort"
	"strings"
	"time"

	"wingman_admin/internal/model"
)

// FilterAll is the wildcard value for every filter dimension. An empty string
// is treated the same way, so unset query params behave like "all".
const FilterAll = "all"

// VideoFilter is the videos tab view-state.
type VideoFilter struct {
	SearchTerm string
	Platform   string
}

// UserFilter is the users tab view-state.
type UserFilter struct {
	SearchTerm string
	Tier       string
	Status     string // all | active | inactive
}

// ComputeStats derives the aggregate counter record from the users and videos
// snapshots. Counts missing from a video payload contribute zero.
func ComputeStats(users []model.User, videos []model.Video) model.Stats {
	stats := model.Stats{
		TotalUsers:  len(users),
		TotalVideos: len(videos),
	}
	for _, u := range users {
		if u.IsActive {
			stats.ActiveUsers++
		}
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.Likes
	}
	return stats
}

// ConversionRate is active users as a rounded percentage of all users.
// Zero users means zero percent, not a division by zero.
func ConversionRate(stats model.Stats) int {
	if stats.TotalUsers == 0 {
		return 0
	}
	return int(float64(stats.ActiveUsers)/float64(stats.TotalUsers)*100 + 0.5)
}

// FilterVideos returns the videos matching the filter, in original order.
// A video matches when the platform filter is "all" or equal, the search term
// is empty or a case-insensitive substring of title or description, and the
// video is not explicitly inactive (absence of the flag counts as active).
func FilterVideos(videos []model.Video, f VideoFilter) []model.Video {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if !v.Active() {
			continue
		}
		if !matchesAll(f.Platform) && v.Platform != f.Platform {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(v.Title), term) &&
			!strings.Contains(strings.ToLower(v.Description), term) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// FilterUsers returns the users matching the filter, in original order.
// Search matches name or goal, case-insensitive.
func FilterUsers(users []model.User, f UserFilter) []model.User {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if term != "" &&
			!strings.Contains(strings.ToLower(u.Name), term) &&
			!strings.Contains(strings.ToLower(u.UserGoal), term) {
			continue
		}
		if !matchesAll(f.Tier) && u.Tier() != f.Tier {
			continue
		}
		switch f.Status {
		case "active":
			if !u.IsActive {
				continue
			}
		case "inactive":
			if u.IsActive {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

// FilterCategories filters by active status ("all", "active", "inactive") and
// sorts ascending by display order. The sort is stable: equal orders keep the
// backend's original sequence.
func FilterCategories(categories []model.Category, status string) []model.Category {
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		switch status {
		case "active":
			if !c.IsActive {
				continue
			}
		case "inactive":
			if c.IsActive {
				continue
			}
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DisplayOrder < out[j].DisplayOrder
	})
	return out
}

// BuildCategoryLookup maps category id to category in one pass. A duplicate
// id overwrites the earlier entry; ids are unique upstream so this is a
// completeness rule, not an expected path.
func BuildCategoryLookup(categories []model.Category) map[string]model.Category {
	lookup := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		lookup[c.ID] = c
	}
	return lookup
}

// CountVideosByCategory buckets videos by their normalized category id.
// Bare-id and embedded-object references land in the same bucket; videos with
// no resolvable category contribute to none.
func CountVideosByCategory(videos []model.Video) map[string]int {
	counts := make(map[string]int)
	for _, v := range videos {
		id := v.Category.CategoryID()
		if id == "" {
			continue
		}
		counts[id]++
	}
	return counts
}

// TopVideosByViews returns the n most-viewed videos, descending. Ties keep
// original collection order.
func TopVideosByViews(videos []model.Video, n int) []model.Video {
	out := make([]model.Video, len(videos))
	copy(out, videos)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Views > out[j].Views
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// RecentUsers returns the n most recently created users, descending by
// creation time, falling back to update time and finally to now when the
// backend omitted both.
func RecentUsers(users []model.User, n int) []model.User {
	now := time.Now()
	out := make([]model.User, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		return userTime(out[i], now).After(userTime(out[j], now))
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

func userTime(u model.User, now time.Time) time.Time {
	if u.CreatedAt != nil {
		return *u.CreatedAt
	}
	if u.UpdatedAt != nil {
		return *u.UpdatedAt
	}
	return now
}

// TierBreakdown counts users per subscription tier. Unrecognized and missing
// tiers land in the "other" bucket rather than being dropped.
func TierBreakdown(users []model.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Tier()]++
	}
	return counts
}

// StatusBreakdown counts users by active flag.
func StatusBreakdown(users []model.User) map[string]int {
	counts := make(map[string]int)
	for _, u := range users {
		if u.IsActive {
			counts["active"]++
		} else {
			counts["inactive"]++
		}
	}
	return counts
}

// PlatformBreakdown counts videos per platform; unknown platforms group under
// "other".
func PlatformBreakdown(videos []model.Video) map[string]int {
	counts := make(map[string]int)
	for _, v := range videos {
		p := v.Platform
		if !model.KnownPlatform(p) {
			p = model.PlatformOther
		}
		counts[p]++
	}
	return counts
}

func matchesAll(filter string) bool {
	return filter == "" || filter == FilterAll
}
