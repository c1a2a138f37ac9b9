package worker

import (
	"context"
	"log"
	"sync"
	"time"

	"wingman_admin/internal/model"
)

// Loader refreshes dashboard snapshots from the backend.
type Loader interface {
	Refresh(ctx context.Context, kind model.Kind) string
}

// Refresher periodically re-pulls every collection so the dashboard stays
// close to the backend without an operator clicking refresh.
type Refresher struct {
	loader   Loader
	interval time.Duration

	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRefresher creates a background refresher. intervalSeconds <= 0 returns
// nil, which disables the worker.
func NewRefresher(loader Loader, intervalSeconds int) *Refresher {
	if intervalSeconds <= 0 {
		return nil
	}
	return &Refresher{
		loader:   loader,
		interval: time.Duration(intervalSeconds) * time.Second,
	}
}

// Start begins the refresh loop. Call Stop() to gracefully shut down.
func (r *Refresher) Start(ctx context.Context) {
	r.ctx, r.cancel = context.WithCancel(ctx)

	log.Printf("[Refresher] Starting with interval=%s", r.interval)

	r.wg.Add(1)
	go r.run()
}

// Stop shuts down the refresh loop. Blocks until the loop has finished.
func (r *Refresher) Stop() {
	log.Printf("[Refresher] Stopping...")
	r.cancel()
	r.wg.Wait()
	log.Printf("[Refresher] Stopped")
}

func (r *Refresher) run() {
	defer r.wg.Done()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-ticker.C:
			r.refreshAll()
		}
	}
}

func (r *Refresher) refreshAll() {
	for _, kind := range model.AllKinds() {
		if r.ctx.Err() != nil {
			return
		}
		if msg := r.loader.Refresh(r.ctx, kind); msg != "" {
			log.Printf("[Refresher] Refresh %s FAILED: %s", kind, msg)
		}
	}
}
