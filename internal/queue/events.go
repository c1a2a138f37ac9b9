package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// Event types published when the console confirms a mutation. The consumer
// app listens for these to invalidate its own caches.
const (
	EventVideoCreated          = "video_created"
	EventVideoUpdated          = "video_updated"
	EventVideoDeleted          = "video_deleted"
	EventUserDeleted           = "user_deleted"
	EventUserStatusToggled     = "user_status_toggled"
	EventCategoryCreated       = "category_created"
	EventCategoryUpdated       = "category_updated"
	EventCategoryDeleted       = "category_deleted"
	EventCategoryStatusToggled = "category_status_toggled"
)

// StreamAdmin is the Redis stream carrying entity-change events.
const StreamAdmin = "stream:admin"

// AdminEvent is one entity-change record. EntityKind matches the collection
// kind names ("users", "videos", "categories").
type AdminEvent struct {
	Type       string `json:"type"`
	Timestamp  int64  `json:"timestamp"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	Actor      string `json:"actor,omitempty"`
}

// NewAdminEvent stamps an event with the current time.
func NewAdminEvent(eventType, entityKind, entityID, actor string) AdminEvent {
	return AdminEvent{
		Type:       eventType,
		Timestamp:  time.Now().Unix(),
		EntityKind: entityKind,
		EntityID:   entityID,
		Actor:      actor,
	}
}

// ToMap converts the event to the flat field map XADD expects.
func (e AdminEvent) ToMap() (map[string]interface{}, error) {
	encoded, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal event: %w", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(encoded, &fields); err != nil {
		return nil, fmt.Errorf("flatten event: %w", err)
	}
	return fields, nil
}
