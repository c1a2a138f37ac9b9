package handler

import (
	"context"

	"wingman_admin/internal/apiclient"
	"wingman_admin/internal/model"
)

// mockBackend implements apiclient.Backend for handler tests. Hooks default
// to empty collections and successful mutations.
type mockBackend struct {
	fetchVideosFn func(ctx context.Context) ([]model.Video, error)
	deleteVideoFn func(ctx context.Context, id string) error

	deleteVideoCalls []string
}

func (m *mockBackend) FetchUsers(ctx context.Context) ([]model.User, error) {
	return []model.User{}, nil
}

func (m *mockBackend) FetchVideos(ctx context.Context) ([]model.Video, error) {
	if m.fetchVideosFn != nil {
		return m.fetchVideosFn(ctx)
	}
	return []model.Video{}, nil
}

func (m *mockBackend) FetchCategories(ctx context.Context) ([]model.Category, error) {
	return []model.Category{}, nil
}

func (m *mockBackend) FetchSupport(ctx context.Context) ([]model.SupportRequest, error) {
	return []model.SupportRequest{}, nil
}

func (m *mockBackend) FetchFeedback(ctx context.Context) ([]model.FeedbackEntry, error) {
	return []model.FeedbackEntry{}, nil
}

func (m *mockBackend) DeleteUser(ctx context.Context, id string) error       { return nil }
func (m *mockBackend) ToggleUserStatus(ctx context.Context, id string) error { return nil }

func (m *mockBackend) AddVideo(ctx context.Context, in model.AddVideoInput, tags []string, thumbnail *apiclient.Upload) error {
	return nil
}

func (m *mockBackend) UpdateVideo(ctx context.Context, id string, in model.UpdateVideoInput) error {
	return nil
}

func (m *mockBackend) DeleteVideo(ctx context.Context, id string) error {
	m.deleteVideoCalls = append(m.deleteVideoCalls, id)
	if m.deleteVideoFn != nil {
		return m.deleteVideoFn(ctx, id)
	}
	return nil
}

func (m *mockBackend) CreateCategory(ctx context.Context, in model.CategoryInput) error { return nil }

func (m *mockBackend) UpdateCategory(ctx context.Context, id string, in model.CategoryInput) error {
	return nil
}

func (m *mockBackend) DeleteCategory(ctx context.Context, id string) error { return nil }
