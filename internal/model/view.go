package model

// VideoView is a video enriched for display: the category resolved through
// the lookup (whichever wire form it arrived in) and the per-platform embed id.
type VideoView struct {
	Video
	CategoryName string `json:"categoryName,omitempty"`
	EmbedID      string `json:"embedId,omitempty"`
}

// OverviewResponse is the overview tab in one payload.
type OverviewResponse struct {
	Stats             Stats          `json:"stats"`
	ConversionRate    int            `json:"conversionRate"`
	TierBreakdown     map[string]int `json:"tierBreakdown"`
	StatusBreakdown   map[string]int `json:"statusBreakdown"`
	PlatformBreakdown map[string]int `json:"platformBreakdown"`
	VideosPerCategory map[string]int `json:"videosPerCategory"`
	RecentUsers       []User         `json:"recentUsers"`
	TopVideos         []VideoView    `json:"topVideos"`
}
