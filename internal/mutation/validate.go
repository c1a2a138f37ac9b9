package mutation

import (
	"regexp"
	"strings"

	"wingman_admin/internal/model"
)

// Per-platform URL patterns. A URL that doesn't match the selected platform
// is rejected locally; no request reaches the backend.
var videoURLPatterns = map[string]*regexp.Regexp{
	model.PlatformYouTube:   regexp.MustCompile(`^https?://(www\.)?(youtube\.com/watch\?v=|youtu\.be/)[\w-]+`),
	model.PlatformTikTok:    regexp.MustCompile(`^https?://(www\.)?tiktok\.com/@[\w.-]+/video/\d+`),
	model.PlatformInstagram: regexp.MustCompile(`^https?://(www\.)?instagram\.com/(p|reel)/[\w-]+/`),
	model.PlatformVimeo:     regexp.MustCompile(`^https?://(www\.)?vimeo\.com/\d+`),
}

// ValidateVideoURL checks a URL against the selected platform's pattern.
// Platforms without a pattern (including "other") never validate, matching
// the upload form which only offers the four embeddable platforms.
func ValidateVideoURL(url, platform string) error {
	if strings.TrimSpace(url) == "" {
		return model.ErrVideoURLRequired
	}
	pattern, ok := videoURLPatterns[platform]
	if !ok || !pattern.MatchString(url) {
		return model.ErrInvalidVideoURL
	}
	return nil
}

// ParseTags splits a comma-separated tag string into trimmed, non-empty
// tokens, preserving input order.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
