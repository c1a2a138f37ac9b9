package model

import "fmt"

// Kind names one of the dashboard's five backing collections. It keys the
// fetch latches, the data store snapshots, and the refresh API.
type Kind string

const (
	KindUsers      Kind = "users"
	KindVideos     Kind = "videos"
	KindCategories Kind = "categories"
	KindSupport    Kind = "support"
	KindFeedback   Kind = "feedback"
)

// AllKinds lists every collection kind in load order.
func AllKinds() []Kind {
	return []Kind{KindUsers, KindVideos, KindCategories, KindSupport, KindFeedback}
}

// ParseKind validates a kind received from a URL segment.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	switch k {
	case KindUsers, KindVideos, KindCategories, KindSupport, KindFeedback:
		return k, nil
	}
	return "", fmt.Errorf("unknown collection kind %q", s)
}
