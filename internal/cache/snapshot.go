// Package cache mirrors the latest collection snapshots to Redis so a
// restarted console can show last-known data while the first fetch is still
// in flight. It is a warm cache only: the store in memory stays the source of
// truth and every entry expires on its own.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"wingman_admin/internal/model"
)

const (
	// SnapshotKeyPrefix is the key prefix for cached collection snapshots.
	SnapshotKeyPrefix = "dashboard:snapshot:"

	// SnapshotTTL bounds how stale a primed dashboard can be.
	SnapshotTTL = 24 * time.Hour
)

// Snapshots persists JSON-encoded collection snapshots keyed by kind.
type Snapshots struct {
	client *redis.Client
}

// NewSnapshots creates the snapshot cache on a shared Redis client.
func NewSnapshots(client *redis.Client) *Snapshots {
	return &Snapshots{client: client}
}

// Save stores a snapshot for kind. Called after every successful fetch.
func (s *Snapshots) Save(ctx context.Context, kind model.Kind, items interface{}) error {
	encoded, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", kind, err)
	}
	if err := s.client.Set(ctx, SnapshotKeyPrefix+string(kind), encoded, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("cache %s snapshot: %w", kind, err)
	}
	return nil
}

// Load reads a cached snapshot into dest. Returns false when no snapshot for
// kind exists (or it expired); that is not an error.
func (s *Snapshots) Load(ctx context.Context, kind model.Kind, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, SnapshotKeyPrefix+string(kind)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %s snapshot: %w", kind, err)
	}
	return true, nil
}
