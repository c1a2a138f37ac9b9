// Package apiclient is the HTTP client for the remote platform backend. Every
// request carries the configured service bearer token; responses unwrap the
// backend's {"data": ...} envelope. A 401 maps to model.ErrSessionExpired,
// which the transport layer turns into a session teardown.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"wingman_admin/internal/model"
)

// Backend is the remote API surface the dashboard consumes. Mutation and
// fetch layers depend on this interface so tests can swap in counting mocks.
type Backend interface {
	FetchUsers(ctx context.Context) ([]model.User, error)
	FetchVideos(ctx context.Context) ([]model.Video, error)
	FetchCategories(ctx context.Context) ([]model.Category, error)
	FetchSupport(ctx context.Context) ([]model.SupportRequest, error)
	FetchFeedback(ctx context.Context) ([]model.FeedbackEntry, error)

	DeleteUser(ctx context.Context, id string) error
	ToggleUserStatus(ctx context.Context, id string) error

	AddVideo(ctx context.Context, in model.AddVideoInput, tags []string, thumbnail *Upload) error
	UpdateVideo(ctx context.Context, id string, in model.UpdateVideoInput) error
	DeleteVideo(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, in model.CategoryInput) error
	UpdateCategory(ctx context.Context, id string, in model.CategoryInput) error
	DeleteCategory(ctx context.Context, id string) error
}

// Upload is an in-memory file part for multipart submissions.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// APIError is a non-2xx backend response. Message carries the server-provided
// detail when the body had one; mutations surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.StatusCode)
}

// Client implements Backend over HTTP.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a backend client. Timeout bounds every request; retry and
// debounce policy live upstream in the fetch orchestrator.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.getJSON(ctx, "/api/users/all", &users); err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}
	return users, nil
}

func (c *Client) FetchVideos(ctx context.Context) ([]model.Video, error) {
	var videos []model.Video
	if err := c.getJSON(ctx, "/api/tv", &videos); err != nil {
		return nil, fmt.Errorf("fetch videos: %w", err)
	}
	return videos, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.getJSON(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	return categories, nil
}

func (c *Client) FetchSupport(ctx context.Context) ([]model.SupportRequest, error) {
	var reqs []model.SupportRequest
	if err := c.getJSON(ctx, "/api/support", &reqs); err != nil {
		return nil, fmt.Errorf("fetch support: %w", err)
	}
	return reqs, nil
}

func (c *Client) FetchFeedback(ctx context.Context) ([]model.FeedbackEntry, error) {
	var entries []model.FeedbackEntry
	if err := c.getJSON(ctx, "/api/feedback", &entries); err != nil {
		return nil, fmt.Errorf("fetch feedback: %w", err)
	}
	return entries, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/users/"+id, nil)
}

func (c *Client) ToggleUserStatus(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodPut, "/api/users/"+id+"/toggle-status", nil)
}

// AddVideo submits the multipart add-video form. The thumbnail part is
// optional and already validated/normalized by the media layer.
func (c *Client) AddVideo(ctx context.Context, in model.AddVideoInput, tags []string, thumbnail *Upload) error {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fields := map[string]string{
		"title":       in.Title,
		"description": in.Description,
		"category":    in.Category,
		"tags":        strings.Join(tags, ","),
		"videoUrl":    in.VideoURL,
		"platform":    in.Platform,
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	if thumbnail != nil {
		part, err := mw.CreateFormFile("thumbnail", thumbnail.Filename)
		if err != nil {
			return fmt.Errorf("create thumbnail part: %w", err)
		}
		if _, err := part.Write(thumbnail.Data); err != nil {
			return fmt.Errorf("write thumbnail part: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/tv/add", &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req, nil)
}

func (c *Client) UpdateVideo(ctx context.Context, id string, in model.UpdateVideoInput) error {
	return c.send(ctx, http.MethodPut, "/api/tv/"+id, in)
}

func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/tv/"+id, nil)
}

func (c *Client) CreateCategory(ctx context.Context, in model.CategoryInput) error {
	return c.send(ctx, http.MethodPost, "/api/categories", in)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in model.CategoryInput) error {
	return c.send(ctx, http.MethodPut, "/api/categories/"+id, in)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/api/categories/"+id, nil)
}

// getJSON performs a GET and decodes the envelope's data field into dest.
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	return c.do(req, dest)
}

// send performs a mutation with an optional JSON body, discarding the
// response data. Snapshots are refreshed afterwards rather than patched from
// mutation responses.
func (c *Client) send(ctx context.Context, method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, dest interface{}) error {
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return model.ErrSessionExpired
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}

	if dest == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if envelope.Data == nil {
		return fmt.Errorf("response envelope missing data field")
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// extractMessage pulls the server-provided error detail out of an error body.
// Accepts both {"message": "..."} and {"error": {"message": "..."}} shapes.
func extractMessage(raw []byte) string {
	var flat struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &flat); err != nil {
		return ""
	}
	if flat.Message != "" {
		return flat.Message
	}
	return flat.Error.Message
}
