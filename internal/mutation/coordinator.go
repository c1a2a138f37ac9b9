// Package mutation serializes user-initiated writes against the backend and
// keeps the data store consistent afterward. Writes are never optimistic: the
// store only ever reflects server-confirmed state, refreshed through the
// fetch orchestrator after each success.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"wingman_admin/internal/apiclient"
	"wingman_admin/internal/model"
	"wingman_admin/internal/queue"
	"wingman_admin/internal/repository"
	"wingman_admin/internal/store"
)

// Operation kinds for the per-action busy flags. A second invocation of an
// operation while one is pending is rejected without a network call.
const (
	opAddVideo       = "add_video"
	opUpdateVideo    = "update_video"
	opDelete         = "delete"
	opToggleUser     = "toggle_user"
	opCreateCategory = "create_category"
	opUpdateCategory = "update_category"
	opToggleCategory = "toggle_category"
)

// Failure carries the user-facing message for a failed mutation: the
// server-provided detail when the backend sent one, else the per-kind
// fallback. The wrapped error stays reachable for errors.Is checks.
type Failure struct {
	Message string
	Err     error
}

func (f *Failure) Error() string { return f.Message }
func (f *Failure) Unwrap() error { return f.Err }

// Refresher is the slice of the fetch orchestrator the coordinator needs.
type Refresher interface {
	Refresh(ctx context.Context, kind model.Kind) string
}

// Coordinator performs mutations one at a time per operation kind. Audit and
// events are best effort; their failure never fails the mutation itself.
type Coordinator struct {
	backend   apiclient.Backend
	refresher Refresher
	store     *store.Store
	audit     repository.AuditRepository // nil disables the audit trail
	publisher queue.Publisher            // nil disables event publishing

	mu     sync.Mutex
	busy   map[string]bool
	staged *stagedDelete
}

type stagedDelete struct {
	kind model.Kind
	id   string
}

// New creates a coordinator. audit and publisher may be nil.
func New(backend apiclient.Backend, refresher Refresher, st *store.Store, audit repository.AuditRepository, publisher queue.Publisher) *Coordinator {
	return &Coordinator{
		backend:   backend,
		refresher: refresher,
		store:     st,
		audit:     audit,
		publisher: publisher,
		busy:      make(map[string]bool),
	}
}

// AddVideo validates the form and submits it. Validation failures are
// reported before any network call: missing title, missing URL, or a URL
// that doesn't match the selected platform.
func (c *Coordinator) AddVideo(ctx context.Context, actor string, in model.AddVideoInput, thumbnail *apiclient.Upload) (string, error) {
	if in.Title == "" {
		return "", model.ErrVideoTitleRequired
	}
	if err := ValidateVideoURL(in.VideoURL, in.Platform); err != nil {
		return "", err
	}
	tags := ParseTags(in.Tags)

	if !c.acquire(opAddVideo) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opAddVideo)

	if err := c.backend.AddVideo(ctx, in, tags, thumbnail); err != nil {
		return "", c.fail(err, "Failed to add video")
	}

	c.afterMutation(ctx, actor, model.AuditVideoCreated, queue.EventVideoCreated, model.KindVideos, "")
	return "Video added successfully!", nil
}

// UpdateVideo submits an edit to one video.
func (c *Coordinator) UpdateVideo(ctx context.Context, actor, id string, in model.UpdateVideoInput) (string, error) {
	if !c.acquire(opUpdateVideo) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opUpdateVideo)

	if err := c.backend.UpdateVideo(ctx, id, in); err != nil {
		return "", c.fail(err, "Failed to update video")
	}

	c.afterMutation(ctx, actor, model.AuditVideoUpdated, queue.EventVideoUpdated, model.KindVideos, id)
	return "Video updated successfully!", nil
}

// ToggleUserStatus flips a user's active flag. The message reflects the
// direction of the flip based on the current snapshot.
func (c *Coordinator) ToggleUserStatus(ctx context.Context, actor, id string) (string, error) {
	if !c.acquire(opToggleUser) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opToggleUser)

	wasActive := false
	for _, u := range c.store.Users() {
		if u.ID == id {
			wasActive = u.IsActive
			break
		}
	}

	if err := c.backend.ToggleUserStatus(ctx, id); err != nil {
		return "", c.fail(err, "Failed to update user status")
	}

	c.afterMutation(ctx, actor, model.AuditUserStatusToggled, queue.EventUserStatusToggled, model.KindUsers, id)
	if wasActive {
		return "User deactivated successfully", nil
	}
	return "User activated successfully", nil
}

// CreateCategory submits a new category.
func (c *Coordinator) CreateCategory(ctx context.Context, actor string, in model.CategoryInput) (string, error) {
	if in.Name == nil || *in.Name == "" {
		return "", model.ErrCategoryNameRequired
	}

	if !c.acquire(opCreateCategory) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opCreateCategory)

	if err := c.backend.CreateCategory(ctx, in); err != nil {
		return "", c.fail(err, "Failed to create category")
	}

	c.afterMutation(ctx, actor, model.AuditCategoryCreated, queue.EventCategoryCreated, model.KindCategories, "")
	return "Category created successfully", nil
}

// UpdateCategory submits a partial edit to one category.
func (c *Coordinator) UpdateCategory(ctx context.Context, actor, id string, in model.CategoryInput) (string, error) {
	if !c.acquire(opUpdateCategory) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opUpdateCategory)

	if err := c.backend.UpdateCategory(ctx, id, in); err != nil {
		return "", c.fail(err, "Failed to update category")
	}

	c.afterMutation(ctx, actor, model.AuditCategoryUpdated, queue.EventCategoryUpdated, model.KindCategories, id)
	return "Category updated successfully", nil
}

// ToggleCategoryStatus flips a category's active flag via a partial update
// carrying only isActive.
func (c *Coordinator) ToggleCategoryStatus(ctx context.Context, actor, id string) (string, error) {
	if !c.acquire(opToggleCategory) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opToggleCategory)

	active := false
	found := false
	for _, cat := range c.store.Categories() {
		if cat.ID == id {
			active = cat.IsActive
			found = true
			break
		}
	}
	if !found {
		return "", model.ErrCategoryNotFound
	}

	next := !active
	if err := c.backend.UpdateCategory(ctx, id, model.CategoryInput{IsActive: &next}); err != nil {
		return "", c.fail(err, "Failed to update category status")
	}

	c.afterMutation(ctx, actor, model.AuditCategoryStatusToggled, queue.EventCategoryStatusToggled, model.KindCategories, id)
	if next {
		return "Category activated successfully", nil
	}
	return "Category deactivated successfully", nil
}

// RequestDelete stages a destructive delete without performing it. Only
// ConfirmDelete issues the network call; CancelDelete discards the target.
func (c *Coordinator) RequestDelete(kind model.Kind, id string) error {
	switch kind {
	case model.KindVideos, model.KindUsers, model.KindCategories:
	default:
		return model.ErrDeleteUnsupported
	}

	c.mu.Lock()
	c.staged = &stagedDelete{kind: kind, id: id}
	c.mu.Unlock()
	return nil
}

// CancelDelete discards the staged target. Zero network effect.
func (c *Coordinator) CancelDelete() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return model.ErrNoDeleteStaged
	}
	c.staged = nil
	return nil
}

// ConfirmDelete performs the staged delete: exactly one DELETE request, then
// a refresh of the owning collection (and stats for users/videos). The staged
// target is cleared on every exit path, success or failure.
func (c *Coordinator) ConfirmDelete(ctx context.Context, actor string) (string, error) {
	c.mu.Lock()
	staged := c.staged
	c.mu.Unlock()
	if staged == nil {
		return "", model.ErrNoDeleteStaged
	}

	if !c.acquire(opDelete) {
		return "", model.ErrOperationInFlight
	}
	defer c.release(opDelete)
	defer func() {
		c.mu.Lock()
		c.staged = nil
		c.mu.Unlock()
	}()

	switch staged.kind {
	case model.KindVideos:
		if err := c.backend.DeleteVideo(ctx, staged.id); err != nil {
			return "", c.fail(err, "Failed to delete video")
		}
		c.afterMutation(ctx, actor, model.AuditVideoDeleted, queue.EventVideoDeleted, model.KindVideos, staged.id)
		return "Video deleted successfully", nil

	case model.KindUsers:
		if err := c.backend.DeleteUser(ctx, staged.id); err != nil {
			return "", c.fail(err, "Failed to delete user")
		}
		c.afterMutation(ctx, actor, model.AuditUserDeleted, queue.EventUserDeleted, model.KindUsers, staged.id)
		return "User deleted successfully", nil

	case model.KindCategories:
		if err := c.backend.DeleteCategory(ctx, staged.id); err != nil {
			return "", c.fail(err, "Failed to delete category")
		}
		c.afterMutation(ctx, actor, model.AuditCategoryDeleted, queue.EventCategoryDeleted, model.KindCategories, staged.id)
		return "Category deleted successfully", nil
	}

	return "", model.ErrDeleteUnsupported
}

// StagedDelete exposes the currently staged target for the confirm dialog.
func (c *Coordinator) StagedDelete() (model.Kind, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.staged == nil {
		return "", "", false
	}
	return c.staged.kind, c.staged.id, true
}

// acquire sets the busy flag for an operation kind.
func (c *Coordinator) acquire(op string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy[op] {
		return false
	}
	c.busy[op] = true
	return true
}

func (c *Coordinator) release(op string) {
	c.mu.Lock()
	c.busy[op] = false
	c.mu.Unlock()
}

// fail maps a backend error to the user-facing failure message. The session
// error passes through untouched so the transport can tear the session down.
func (c *Coordinator) fail(err error, fallback string) error {
	if errors.Is(err, model.ErrSessionExpired) {
		return err
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return &Failure{Message: apiErr.Message, Err: err}
	}
	return &Failure{Message: fallback, Err: err}
}

// afterMutation runs the post-success bookkeeping: targeted refresh, audit
// entry, and change event. Refresh failures only log; the mutation already
// succeeded on the server.
func (c *Coordinator) afterMutation(ctx context.Context, actor, auditAction, eventType string, kind model.Kind, entityID string) {
	if msg := c.refresher.Refresh(ctx, kind); msg != "" {
		log.Printf("[Mutation] post-mutation refresh of %s: %s", kind, msg)
	}

	if c.audit != nil {
		entry := &model.AuditEntry{
			Actor:      actor,
			Action:     auditAction,
			EntityKind: string(kind),
			EntityID:   entityID,
		}
		if err := c.audit.Record(ctx, entry); err != nil {
			log.Printf("[Mutation] audit record failed: %v", err)
		}
	}

	if c.publisher != nil {
		event := queue.NewAdminEvent(eventType, string(kind), entityID, actor)
		if _, err := c.publisher.Publish(ctx, queue.StreamAdmin, event); err != nil {
			log.Printf("[Mutation] event publish failed: %v", err)
		}
	}
}

// UserMessage extracts the message a failed mutation should show. Sentinel
// validation errors read well as-is; anything else already carries its text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Message
	}
	return fmt.Sprintf("%v", err)
}
