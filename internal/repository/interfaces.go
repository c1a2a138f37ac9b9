package repository

import (
	"context"

	"wingman_admin/internal/model"
)

// AuditRepository records and lists the console's audit trail.
type AuditRepository interface {
	// Record inserts one audit entry. Called after every confirmed mutation.
	Record(ctx context.Context, entry *model.AuditEntry) error
	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]model.AuditEntry, error)
}
