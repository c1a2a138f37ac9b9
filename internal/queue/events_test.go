package queue

import (
	"testing"
	"time"
)

func TestNewAdminEvent(t *testing.T) {
	before := time.Now().Unix()
	event := NewAdminEvent(EventVideoDeleted, "videos", "v1", "admin@example.com")
	after := time.Now().Unix()

	if event.Type != EventVideoDeleted {
		t.Errorf("type = %q", event.Type)
	}
	if event.EntityKind != "videos" || event.EntityID != "v1" {
		t.Errorf("entity = %s/%s", event.EntityKind, event.EntityID)
	}
	if event.Actor != "admin@example.com" {
		t.Errorf("actor = %q", event.Actor)
	}
	if event.Timestamp < before || event.Timestamp > after {
		t.Errorf("timestamp = %d, want between %d and %d", event.Timestamp, before, after)
	}
}

func TestAdminEvent_ToMap(t *testing.T) {
	event := NewAdminEvent(EventCategoryCreated, "categories", "", "admin@example.com")

	fields, err := event.ToMap()
	if err != nil {
		t.Fatalf("ToMap: %v", err)
	}

	if fields["type"] != EventCategoryCreated {
		t.Errorf("type field = %v", fields["type"])
	}
	if fields["entity_kind"] != "categories" {
		t.Errorf("entity_kind field = %v", fields["entity_kind"])
	}
	// Empty entity id is omitted, not published as ""
	if _, ok := fields["entity_id"]; ok {
		t.Error("empty entity_id should be omitted from stream fields")
	}
}
