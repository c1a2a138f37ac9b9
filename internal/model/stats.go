package model

// Stats is the aggregate counter record shown on the overview tab.
// It is derived from the users and videos snapshots, never fetched on its own.
type Stats struct {
	TotalUsers  int `json:"totalUsers"`
	ActiveUsers int `json:"activeUsers"`
	TotalVideos int `json:"totalVideos"`
	TotalViews  int `json:"totalViews"`
	TotalLikes  int `json:"totalLikes"`
}
