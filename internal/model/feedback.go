package model

import "time"

// FeedbackEntry is an in-app feedback submission as returned by GET /api/feedback.
// Type is free text (the set grows with the app); Rating is 0-5.
type FeedbackEntry struct {
	ID        string                 `json:"_id"`
	Type      string                 `json:"type"`
	Rating    int                    `json:"rating"`
	Message   string                 `json:"message"`
	UserID    *string                `json:"user,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt *time.Time             `json:"createdAt,omitempty"`
}
