package model

import "errors"

const (
	MaxThumbnailSizeBytes = 5 * 1024 * 1024 // 5MB limit on uploaded thumbnails
	ThumbnailMaxWidth     = 1280
	ThumbnailMaxHeight    = 720
)

// Supported image content types for upload validation
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWebP = "image/webp"
)

var allowedImageTypes = map[string]struct{}{
	ContentTypeJPEG: {},
	ContentTypePNG:  {},
	ContentTypeGIF:  {},
	ContentTypeWebP: {},
}

// IsAllowedImageType reports whether the content type may be uploaded as a thumbnail.
func IsAllowedImageType(contentType string) bool {
	_, ok := allowedImageTypes[contentType]
	return ok
}

// Error codes for HTTP responses
const (
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeInvalidImageType = "INVALID_IMAGE_TYPE"
)

// Domain errors for media operations
var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidImageType = errors.New("invalid image type")
)

// ExportResult represents the uploaded export object location.
type ExportResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
