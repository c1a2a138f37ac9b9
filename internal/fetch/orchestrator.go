// Package fetch coordinates loading collections from the backend into the
// data store. It enforces at most one in-flight request per collection kind
// and reduces failures to user-facing messages; nothing below this layer
// throws past it.
package fetch

import (
	"context"
	"log"
	"sync"

	"wingman_admin/internal/apiclient"
	"wingman_admin/internal/cache"
	"wingman_admin/internal/derive"
	"wingman_admin/internal/model"
	"wingman_admin/internal/store"
)

// MsgLoadFailed is the single aggregate message surfaced when any leg of the
// initial load fails. Collections that did succeed are still published.
const MsgLoadFailed = "Failed to load dashboard data"

// Per-kind fetch failure messages.
var failMessages = map[model.Kind]string{
	model.KindUsers:      "Failed to fetch users",
	model.KindVideos:     "Failed to fetch videos",
	model.KindCategories: "Failed to fetch categories",
	model.KindSupport:    "Failed to fetch support requests",
	model.KindFeedback:   "Failed to fetch feedback",
}

// Orchestrator owns the per-kind in-flight latches. Within one kind the latch
// guarantees responses apply in send order; across kinds there is no ordering
// requirement. Snapshots is optional and may be nil.
type Orchestrator struct {
	backend   apiclient.Backend
	store     *store.Store
	snapshots *cache.Snapshots

	mu       sync.Mutex
	inflight map[model.Kind]bool
}

// New creates an orchestrator publishing into st.
func New(backend apiclient.Backend, st *store.Store, snapshots *cache.Snapshots) *Orchestrator {
	return &Orchestrator{
		backend:   backend,
		store:     st,
		snapshots: snapshots,
		inflight:  make(map[model.Kind]bool),
	}
}

// LoadAll fans out one fetch per collection kind and waits for every leg to
// settle. Successes publish to the store even when siblings fail; stats are
// recomputed once after the fan-in. Returns "" on full success, otherwise the
// aggregate failure message.
func (o *Orchestrator) LoadAll(ctx context.Context) string {
	var wg sync.WaitGroup
	var failMu sync.Mutex
	failed := false

	for _, kind := range model.AllKinds() {
		if !o.acquire(kind) {
			// A refresh for this kind is already running; its result will
			// land in the store on its own.
			continue
		}
		wg.Add(1)
		go func(kind model.Kind) {
			defer wg.Done()
			defer o.release(kind)
			if err := o.fetchKind(ctx, kind); err != nil {
				log.Printf("[Fetch] %s load failed: %v", kind, err)
				failMu.Lock()
				failed = true
				failMu.Unlock()
			}
		}(kind)
	}
	wg.Wait()

	o.recomputeStats()

	if failed {
		return MsgLoadFailed
	}
	return ""
}

// Refresh re-fetches one collection. A call while a fetch for the same kind
// is outstanding is a no-op: no duplicate request, no latch clobbering. This
// is what keeps a mashed refresh button from becoming a request storm.
// Returns "" on success or no-op, else the per-kind failure message.
func (o *Orchestrator) Refresh(ctx context.Context, kind model.Kind) string {
	if !o.acquire(kind) {
		return ""
	}
	defer o.release(kind)

	if err := o.fetchKind(ctx, kind); err != nil {
		log.Printf("[Fetch] %s refresh failed: %v", kind, err)
		return failMessages[kind]
	}

	if kind == model.KindUsers || kind == model.KindVideos {
		o.recomputeStats()
	}
	return ""
}

// Prime loads cached snapshots into the store before the first fetch. Best
// effort: a cold or unreachable cache leaves the store empty.
func (o *Orchestrator) Prime(ctx context.Context) {
	if o.snapshots == nil {
		return
	}

	var users []model.User
	if ok, err := o.snapshots.Load(ctx, model.KindUsers, &users); err != nil {
		log.Printf("[Fetch] prime users: %v", err)
	} else if ok {
		o.store.ReplaceUsers(users)
	}

	var videos []model.Video
	if ok, err := o.snapshots.Load(ctx, model.KindVideos, &videos); err != nil {
		log.Printf("[Fetch] prime videos: %v", err)
	} else if ok {
		o.store.ReplaceVideos(videos)
	}

	var categories []model.Category
	if ok, err := o.snapshots.Load(ctx, model.KindCategories, &categories); err != nil {
		log.Printf("[Fetch] prime categories: %v", err)
	} else if ok {
		o.store.ReplaceCategories(categories)
	}

	var support []model.SupportRequest
	if ok, err := o.snapshots.Load(ctx, model.KindSupport, &support); err != nil {
		log.Printf("[Fetch] prime support: %v", err)
	} else if ok {
		o.store.ReplaceSupport(support)
	}

	var feedback []model.FeedbackEntry
	if ok, err := o.snapshots.Load(ctx, model.KindFeedback, &feedback); err != nil {
		log.Printf("[Fetch] prime feedback: %v", err)
	} else if ok {
		o.store.ReplaceFeedback(feedback)
	}

	o.recomputeStats()
}

// acquire sets the latch for kind. Returns false when a fetch is already in
// flight.
func (o *Orchestrator) acquire(kind model.Kind) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.inflight[kind] {
		return false
	}
	o.inflight[kind] = true
	return true
}

// release clears the latch. Always runs via defer so errors cannot leave a
// kind latched forever.
func (o *Orchestrator) release(kind model.Kind) {
	o.mu.Lock()
	o.inflight[kind] = false
	o.mu.Unlock()
}

func (o *Orchestrator) fetchKind(ctx context.Context, kind model.Kind) error {
	switch kind {
	case model.KindUsers:
		users, err := o.backend.FetchUsers(ctx)
		if err != nil {
			return err
		}
		o.store.ReplaceUsers(users)
		o.mirror(ctx, kind, users)
	case model.KindVideos:
		videos, err := o.backend.FetchVideos(ctx)
		if err != nil {
			return err
		}
		o.store.ReplaceVideos(videos)
		o.mirror(ctx, kind, videos)
	case model.KindCategories:
		categories, err := o.backend.FetchCategories(ctx)
		if err != nil {
			return err
		}
		o.store.ReplaceCategories(categories)
		o.mirror(ctx, kind, categories)
	case model.KindSupport:
		reqs, err := o.backend.FetchSupport(ctx)
		if err != nil {
			return err
		}
		o.store.ReplaceSupport(reqs)
		o.mirror(ctx, kind, reqs)
	case model.KindFeedback:
		entries, err := o.backend.FetchFeedback(ctx)
		if err != nil {
			return err
		}
		o.store.ReplaceFeedback(entries)
		o.mirror(ctx, kind, entries)
	}
	return nil
}

// mirror copies a fresh snapshot to the warm cache. Failure only logs; the
// cache is an optimization, never a dependency.
func (o *Orchestrator) mirror(ctx context.Context, kind model.Kind, items interface{}) {
	if o.snapshots == nil {
		return
	}
	if err := o.snapshots.Save(ctx, kind, items); err != nil {
		log.Printf("[Fetch] mirror %s snapshot: %v", kind, err)
	}
}

// recomputeStats derives the aggregate counters from the current users and
// videos snapshots. One fetch serves both the raw views and the stats; the
// stats record is never fetched on its own.
func (o *Orchestrator) recomputeStats() {
	o.store.SetStats(derive.ComputeStats(o.store.Users(), o.store.Videos()))
}
