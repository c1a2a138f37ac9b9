package model

import "time"

// Support request statuses.
const (
	SupportOpen       = "open"
	SupportInProgress = "in_progress"
	SupportResolved   = "resolved"
)

// SupportRequest is a help-desk entry as returned by GET /api/support.
// The user reference is optional; anonymous requests are valid.
type SupportRequest struct {
	ID        string                 `json:"_id"`
	Category  string                 `json:"category"`
	Message   string                 `json:"message"`
	Status    string                 `json:"status"`
	UserID    *string                `json:"user,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt *time.Time             `json:"createdAt,omitempty"`
}
