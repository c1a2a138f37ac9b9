package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Video hosting platforms supported by the dashboard.
const (
	PlatformYouTube   = "youtube"
	PlatformTikTok    = "tiktok"
	PlatformInstagram = "instagram"
	PlatformVimeo     = "vimeo"
	PlatformOther     = "other"
)

// KnownPlatform reports whether p is one of the recognized platform values.
func KnownPlatform(p string) bool {
	switch p {
	case PlatformYouTube, PlatformTikTok, PlatformInstagram, PlatformVimeo, PlatformOther:
		return true
	}
	return false
}

// Video is a curated TV entry as returned by GET /api/tv.
//
// Views and likes may be absent from the backend payload; zero values stand
// in for missing counts. IsActive is a pointer because absence of the flag
// means active (default-active policy) while an explicit false hides the video.
type Video struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Platform    string      `json:"platform"`
	Category    CategoryRef `json:"category"`
	Tags        []string    `json:"tags"`
	Views       int         `json:"views"`
	Likes       int         `json:"likes"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	VideoURL    string      `json:"videoUrl"`
	IsActive    *bool       `json:"isActive,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Active applies the default-active policy: only an explicit false hides
// a video.
func (v Video) Active() bool {
	return v.IsActive == nil || *v.IsActive
}

// CategoryRef is the video's category field as the backend serves it: either
// a bare category id ("c1") or an embedded category object ({"_id":"c1",...}).
// Both forms normalize to the same id so grouping and lookups treat them
// identically.
type CategoryRef struct {
	ID       string
	Embedded *Category
}

// CategoryID returns the referenced category id, or "" when the video is
// uncategorized.
func (r CategoryRef) CategoryID() string {
	if r.Embedded != nil {
		return r.Embedded.ID
	}
	return r.ID
}

// IsZero reports whether the video carries no category reference at all.
func (r CategoryRef) IsZero() bool {
	return r.Embedded == nil && r.ID == ""
}

// UnmarshalJSON accepts a string id, an embedded category object, or null.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	*r = CategoryRef{}
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &r.ID)
	}
	var c Category
	if err := json.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("category ref: %w", err)
	}
	r.Embedded = &c
	return nil
}

// MarshalJSON writes the embedded object when present, otherwise the bare id.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Embedded != nil {
		return json.Marshal(r.Embedded)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// AddVideoInput is the dashboard's form payload for POST /api/tv/add.
// Tags holds the raw comma-separated string exactly as typed.
type AddVideoInput struct {
	Title       string
	Description string
	Category    string
	Tags        string
	VideoURL    string
	Platform    string
}

// UpdateVideoInput is the JSON body forwarded to PUT /api/tv/:id.
type UpdateVideoInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Platform    string   `json:"platform"`
}

var (
	// ErrVideoNotFound is returned when the backend reports an unknown video id.
	ErrVideoNotFound = errors.New("video not found")

	// ErrVideoURLRequired is returned when an add-video form has no URL.
	ErrVideoURLRequired = errors.New("video URL is required")

	// ErrInvalidVideoURL is returned when a URL does not match the selected
	// platform's pattern. No request is sent in that case.
	ErrInvalidVideoURL = errors.New("invalid video URL for the selected platform")

	// ErrVideoTitleRequired is returned when an add-video form has no title.
	ErrVideoTitleRequired = errors.New("video title is required")
)
