package model

import "time"

// Audit actions recorded for confirmed mutations.
const (
	AuditVideoCreated          = "video_created"
	AuditVideoUpdated          = "video_updated"
	AuditVideoDeleted          = "video_deleted"
	AuditUserDeleted           = "user_deleted"
	AuditUserStatusToggled     = "user_status_toggled"
	AuditCategoryCreated       = "category_created"
	AuditCategoryUpdated       = "category_updated"
	AuditCategoryDeleted       = "category_deleted"
	AuditCategoryStatusToggled = "category_status_toggled"
	AuditExportGenerated       = "export_generated"
)

// AuditEntry is one row of the local audit trail. The remote backend owns all
// entity storage; this trail is the console's own record of who changed what.
type AuditEntry struct {
	ID         int64     `db:"id" json:"id"`
	Actor      string    `db:"actor" json:"actor"`
	Action     string    `db:"action" json:"action"`
	EntityKind string    `db:"entity_kind" json:"entity_kind"`
	EntityID   string    `db:"entity_id" json:"entity_id"`
	Detail     *string   `db:"detail" json:"detail,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
