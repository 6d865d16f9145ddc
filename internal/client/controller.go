package client

import (
	"context"
	"errors"
	"strings"

	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/state"
	"go.uber.org/zap"
)

// Controller drives the session state store from user actions. Every action
// sets the loading flag around its network calls and writes failures into the
// store's error message instead of returning them to the caller's UI code.
type Controller struct {
	api    *Client
	store  *state.Store
	logger *zap.Logger
}

// NewController creates a controller over api writing into store.
func NewController(api *Client, store *state.Store, logger *zap.Logger) *Controller {
	return &Controller{api: api, store: store, logger: logger}
}

// LoadList fetches the list with the given slug and its URLs into the store.
func (c *Controller) LoadList(ctx context.Context, slug string) {
	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	list, err := c.api.ListBySlug(ctx, slug)
	if err != nil {
		c.fail("loading list", err)

		return
	}

	urls, err := c.api.URLs(ctx, list.ID)
	if err != nil {
		c.fail("loading urls", err)

		return
	}

	c.store.SetCurrentList(list)
	c.store.SetURLs(urls)
	c.store.SetError("")
}

// CreateList submits a new list using the store's custom slug draft. On
// success it returns the created list's slug so the caller can navigate to
// it; on failure it returns empty and records the error in the store.
func (c *Controller) CreateList(ctx context.Context, title, description string) string {
	if strings.TrimSpace(title) == "" {
		c.store.SetError("Title is required")

		return ""
	}

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	list, err := c.api.CreateList(ctx, CreateListInput{
		Title:       title,
		Description: description,
		Slug:        c.store.Snapshot().CustomSlug,
	})
	if err != nil {
		c.fail("creating list", err)

		return ""
	}

	c.store.SetCurrentList(list)
	c.store.SetCustomSlug("")
	c.store.SetError("")

	return list.Slug
}

// SubmitNewURL posts the store's draft URL to the current list, prepends the
// created URL, and clears the form.
func (c *Controller) SubmitNewURL(ctx context.Context) {
	snap := c.store.Snapshot()

	if snap.CurrentList == nil {
		c.store.SetError("No list selected")

		return
	}

	// Cheap pre-check so an obviously bad URL fails without a round trip.
	// The server re-validates either way.
	if !linklist.IsValidURL(snap.NewURL.URL) {
		c.store.SetError("Valid URL is required")

		return
	}

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	url, err := c.api.CreateURL(ctx, snap.CurrentList.ID, snap.NewURL)
	if err != nil {
		c.fail("adding url", err)

		return
	}

	c.store.PrependURL(*url)
	c.store.ResetForm()
}

// RemoveURL deletes a URL from the current list and drops it from the store.
func (c *Controller) RemoveURL(ctx context.Context, urlID int64) {
	snap := c.store.Snapshot()

	if snap.CurrentList == nil {
		c.store.SetError("No list selected")

		return
	}

	c.store.SetLoading(true)
	defer c.store.SetLoading(false)

	if err := c.api.DeleteURL(ctx, snap.CurrentList.ID, urlID); err != nil {
		c.fail("removing url", err)

		return
	}

	c.store.RemoveURL(urlID)
	c.store.SetError("")
}

// LeaveList clears all session state when navigating away from a list.
func (c *Controller) LeaveList() {
	c.store.ResetStores()
}

func (c *Controller) fail(action string, err error) {
	c.logger.Warn("api call failed", zap.String("action", action), zap.Error(err))

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.store.SetError(apiErr.Message)

		return
	}

	c.store.SetError("Something went wrong. Please try again.")
}
