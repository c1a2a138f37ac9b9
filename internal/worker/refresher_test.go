package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"wingman_admin/internal/model"
)

// mockLoader records every refreshed kind.
type mockLoader struct {
	mu    sync.Mutex
	kinds []model.Kind
}

func (m *mockLoader) Refresh(ctx context.Context, kind model.Kind) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kinds = append(m.kinds, kind)
	return ""
}

func (m *mockLoader) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.kinds)
}

func TestNewRefresher_DisabledWhenIntervalZero(t *testing.T) {
	if r := NewRefresher(&mockLoader{}, 0); r != nil {
		t.Error("interval 0 should disable the refresher")
	}
	if r := NewRefresher(&mockLoader{}, -5); r != nil {
		t.Error("negative interval should disable the refresher")
	}
}

func TestRefresher_TicksThroughEveryKind(t *testing.T) {
	loader := &mockLoader{}
	r := NewRefresher(loader, 1)
	if r == nil {
		t.Fatal("expected an enabled refresher")
	}
	// Shrink the interval so the test doesn't wait a full second
	r.interval = 10 * time.Millisecond

	r.Start(context.Background())
	defer r.Stop()

	deadline := time.After(2 * time.Second)
	for loader.calls() < len(model.AllKinds()) {
		select {
		case <-deadline:
			t.Fatalf("only %d refresh calls before deadline", loader.calls())
		case <-time.After(5 * time.Millisecond):
		}
	}

	loader.mu.Lock()
	seen := make(map[model.Kind]bool)
	for _, k := range loader.kinds {
		seen[k] = true
	}
	loader.mu.Unlock()

	for _, k := range model.AllKinds() {
		if !seen[k] {
			t.Errorf("kind %s was never refreshed", k)
		}
	}
}

func TestRefresher_StopHalts(t *testing.T) {
	loader := &mockLoader{}
	r := NewRefresher(loader, 1)
	r.interval = 5 * time.Millisecond

	r.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	r.Stop()

	after := loader.calls()
	time.Sleep(30 * time.Millisecond)

	if loader.calls() != after {
		t.Error("refresher kept running after Stop")
	}
}
