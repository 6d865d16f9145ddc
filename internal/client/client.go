// Package client is a typed consumer of the HTTP API. It pairs a thin
// request/response wrapper with a view controller that mirrors server data
// into a session state store.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/serroba/linklist/internal/linklist"
)

// APIError is an error envelope decoded from a non-2xx response.
type APIError struct {
	Status  int
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// CreateListInput is the body for creating a list.
type CreateListInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug,omitempty"`
}

// Client calls the list API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API at baseURL. A nil httpClient falls back to
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: baseURL, http: httpClient}
}

// Lists fetches all lists, newest first.
func (c *Client) Lists(ctx context.Context) ([]linklist.List, error) {
	var lists []linklist.List
	if err := c.do(ctx, http.MethodGet, "/lists", nil, &lists); err != nil {
		return nil, err
	}

	return lists, nil
}

// List fetches a single list by id.
func (c *Client) List(ctx context.Context, id int64) (*linklist.List, error) {
	var list linklist.List
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/lists/%d", id), nil, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// ListBySlug fetches a single list by slug.
func (c *Client) ListBySlug(ctx context.Context, slug string) (*linklist.List, error) {
	var list linklist.List
	if err := c.do(ctx, http.MethodGet, "/lists/slug/"+slug, nil, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// CreateList creates a new list.
func (c *Client) CreateList(ctx context.Context, input CreateListInput) (*linklist.List, error) {
	var list linklist.List
	if err := c.do(ctx, http.MethodPost, "/lists", input, &list); err != nil {
		return nil, err
	}

	return &list, nil
}

// DeleteList removes a list and everything in it.
func (c *Client) DeleteList(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lists/%d", id), nil, nil)
}

// URLs fetches a list's URLs, newest first.
func (c *Client) URLs(ctx context.Context, listID int64) ([]linklist.URL, error) {
	var urls []linklist.URL
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/lists/%d/urls", listID), nil, &urls); err != nil {
		return nil, err
	}

	return urls, nil
}

// CreateURL adds a URL to a list.
func (c *Client) CreateURL(ctx context.Context, listID int64, input linklist.NewURLInput) (*linklist.URL, error) {
	var url linklist.URL
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/lists/%d/urls", listID), input, &url); err != nil {
		return nil, err
	}

	return &url, nil
}

// DeleteURL removes a URL from a list.
func (c *Client) DeleteURL(ctx context.Context, listID, urlID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/lists/%d/urls/%d", listID, urlID), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}

		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
