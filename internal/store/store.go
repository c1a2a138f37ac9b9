// Package store holds the latest known snapshot of each backing collection
// plus the derived aggregate stats. It is the only shared mutable state in the
// service: the fetch orchestrator writes it, everything else reads it. The
// store itself performs no I/O.
package store

import (
	"sync"

	"wingman_admin/internal/model"
)

// Store keeps one snapshot per collection kind. Snapshots are replaced
// wholesale after a successful fetch, never patched in place, so readers can
// safely hold a returned slice across derivations.
type Store struct {
	mu sync.RWMutex

	users      []model.User
	videos     []model.Video
	categories []model.Category
	support    []model.SupportRequest
	feedback   []model.FeedbackEntry

	stats model.Stats
}

// New returns a store whose collections are empty but non-nil, so callers see
// an empty dashboard rather than nulls before the first fetch settles.
func New() *Store {
	return &Store{
		users:      []model.User{},
		videos:     []model.Video{},
		categories: []model.Category{},
		support:    []model.SupportRequest{},
		feedback:   []model.FeedbackEntry{},
	}
}

// ReplaceUsers swaps the users snapshot atomically.
func (s *Store) ReplaceUsers(users []model.User) {
	if users == nil {
		users = []model.User{}
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
}

// ReplaceVideos swaps the videos snapshot atomically.
func (s *Store) ReplaceVideos(videos []model.Video) {
	if videos == nil {
		videos = []model.Video{}
	}
	s.mu.Lock()
	s.videos = videos
	s.mu.Unlock()
}

// ReplaceCategories swaps the categories snapshot atomically.
func (s *Store) ReplaceCategories(categories []model.Category) {
	if categories == nil {
		categories = []model.Category{}
	}
	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
}

// ReplaceSupport swaps the support snapshot atomically.
func (s *Store) ReplaceSupport(reqs []model.SupportRequest) {
	if reqs == nil {
		reqs = []model.SupportRequest{}
	}
	s.mu.Lock()
	s.support = reqs
	s.mu.Unlock()
}

// ReplaceFeedback swaps the feedback snapshot atomically.
func (s *Store) ReplaceFeedback(entries []model.FeedbackEntry) {
	if entries == nil {
		entries = []model.FeedbackEntry{}
	}
	s.mu.Lock()
	s.feedback = entries
	s.mu.Unlock()
}

// Users returns the current users snapshot. Never blocks on I/O.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

// Videos returns the current videos snapshot.
func (s *Store) Videos() []model.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.videos
}

// Categories returns the current categories snapshot.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.categories
}

// Support returns the current support snapshot.
func (s *Store) Support() []model.SupportRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.support
}

// Feedback returns the current feedback snapshot.
func (s *Store) Feedback() []model.FeedbackEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.feedback
}

// SetStats records the derived aggregate counters.
func (s *Store) SetStats(stats model.Stats) {
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
}

// Stats returns the last derived aggregate counters.
func (s *Store) Stats() model.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
