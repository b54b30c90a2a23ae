// Package client is the typed HTTP client for the blog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"blog-api/models"
)

// Client talks to the blog API over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the API, carrying the server's
// human-readable message. Transport failures are returned as plain wrapped
// errors instead.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// wirePost keeps the timestamp as a string so a missing or malformed
// createdAt degrades to "now" instead of failing the whole decode.
type wirePost struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func (wp wirePost) toPost() models.Post {
	post := models.Post{
		Title:   wp.Title,
		Content: wp.Content,
	}
	if id, err := uuid.Parse(wp.ID); err == nil {
		post.ID = id
	}
	if t, err := time.Parse(time.RFC3339Nano, wp.CreatedAt); err == nil {
		post.CreatedAt = t
	} else {
		post.CreatedAt = time.Now()
	}
	return post
}

// List fetches all posts, newest first.
func (c *Client) List(ctx context.Context) ([]models.Post, error) {
	resp, err := c.do(ctx, "GET", "/posts", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var wirePosts []wirePost
	if err := json.NewDecoder(resp.Body).Decode(&wirePosts); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	posts := make([]models.Post, 0, len(wirePosts))
	for _, wp := range wirePosts {
		posts = append(posts, wp.toPost())
	}
	return posts, nil
}

// Get fetches a single post by ID.
func (c *Client) Get(ctx context.Context, id uuid.UUID) (models.Post, error) {
	resp, err := c.do(ctx, "GET", "/posts/"+id.String(), nil)
	if err != nil {
		return models.Post{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return models.Post{}, err
	}

	var wp wirePost
	if err := json.NewDecoder(resp.Body).Decode(&wp); err != nil {
		return models.Post{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return wp.toPost(), nil
}

// Create stores a new post and returns it with its server-assigned ID and
// timestamp.
func (c *Client) Create(ctx context.Context, in models.CreatePostInput) (models.Post, error) {
	resp, err := c.do(ctx, "POST", "/posts", in)
	if err != nil {
		return models.Post{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return models.Post{}, err
	}

	var wp wirePost
	if err := json.NewDecoder(resp.Body).Decode(&wp); err != nil {
		return models.Post{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return wp.toPost(), nil
}

// Update overwrites the supplied fields of a post and returns the result.
func (c *Client) Update(ctx context.Context, id uuid.UUID, in models.UpdatePostInput) (models.Post, error) {
	resp, err := c.do(ctx, "PUT", "/posts/"+id.String(), in)
	if err != nil {
		return models.Post{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := c.checkStatus(resp); err != nil {
		return models.Post{}, err
	}

	var wp wirePost
	if err := json.NewDecoder(resp.Body).Decode(&wp); err != nil {
		return models.Post{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return wp.toPost(), nil
}

// Delete removes a post. Deleting an absent ID succeeds.
func (c *Client) Delete(ctx context.Context, id uuid.UUID) error {
	resp, err := c.do(ctx, "DELETE", "/posts/"+id.String(), nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return c.checkStatus(resp)
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	return resp, nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	message := resp.Status
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(respBody) > 0 {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Message != "" {
			message = errResp.Message
		} else {
			message = strings.TrimSpace(string(respBody))
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
