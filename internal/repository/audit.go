package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"wingman_admin/internal/model"
)

// auditRepository implements AuditRepository using sqlx.
type auditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new audit repository.
func NewAuditRepository(db *sqlx.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Record inserts one audit entry.
func (r *auditRepository) Record(ctx context.Context, entry *model.AuditEntry) error {
	query := `
		INSERT INTO audit_log (actor, action, entity_kind, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		entry.Actor,
		entry.Action,
		entry.EntityKind,
		entry.EntityID,
		entry.Detail,
	)

	if err := row.Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

// List returns the most recent entries, newest first.
func (r *auditRepository) List(ctx context.Context, limit int) ([]model.AuditEntry, error) {
	query := `
		SELECT id, actor, action, entity_kind, entity_id, detail, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`

	var entries []model.AuditEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}
