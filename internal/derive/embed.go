package derive

import (
	"regexp"

	"wingman_admin/internal/model"
)

// Embed-id extraction for the player iframes. A URL that doesn't match yields
// "" and the presentation layer falls back to a plain link.
var (
	youtubeIDRe = regexp.MustCompile(`(?:youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*)`)
	tiktokIDRe  = regexp.MustCompile(`tiktok\.com/.*/video/(\d+)`)
	vimeoIDRe   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// ExtractYouTubeID pulls the 11-character video id out of any YouTube URL form.
func ExtractYouTubeID(url string) string {
	m := youtubeIDRe.FindStringSubmatch(url)
	if m == nil || len(m[1]) != 11 {
		return ""
	}
	return m[1]
}

// ExtractTikTokID pulls the numeric video id out of a TikTok URL.
func ExtractTikTokID(url string) string {
	m := tiktokIDRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// ExtractVimeoID pulls the numeric video id out of a Vimeo URL.
func ExtractVimeoID(url string) string {
	m := vimeoIDRe.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// EmbedID returns the platform-appropriate embed id for a video.
// Instagram embeds consume the post URL directly, so it returns "".
func EmbedID(v model.Video) string {
	switch v.Platform {
	case model.PlatformYouTube:
		return ExtractYouTubeID(v.VideoURL)
	case model.PlatformTikTok:
		return ExtractTikTokID(v.VideoURL)
	case model.PlatformVimeo:
		return ExtractVimeoID(v.VideoURL)
	}
	return ""
}
