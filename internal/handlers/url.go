package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linklist/internal/analytics"
	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/messaging"
	"github.com/serroba/linklist/internal/metadata"
	"go.uber.org/zap"
)

// URLHandler handles the URL collection of a list.
type URLHandler struct {
	store           linklist.Repository
	extractor       metadata.Extractor
	extractTimeout  time.Duration
	publishURLAdded messaging.Publish[analytics.URLAddedEvent]
	logger          *zap.Logger
}

// NewURLHandler creates a new URL handler. extractTimeout bounds every
// metadata extraction; extraction is the one call outside our control.
func NewURLHandler(
	store linklist.Repository,
	extractor metadata.Extractor,
	extractTimeout time.Duration,
	publishURLAdded messaging.Publish[analytics.URLAddedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		store:           store,
		extractor:       extractor,
		extractTimeout:  extractTimeout,
		publishURLAdded: publishURLAdded,
		logger:          logger,
	}
}

func (h *URLHandler) GetURLs(ctx context.Context, req *ListURLsRequest) (*URLsResponse, error) {
	listID, err := parseID(req.ID, "list ID")
	if err != nil {
		return nil, err
	}

	// No existence check: an unknown list just yields an empty collection.
	urls, err := h.store.URLs(ctx, listID)
	if err != nil {
		h.logger.Error("failed to fetch urls", zap.Int64("listId", listID), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to fetch URLs")
	}

	return &URLsResponse{Body: urls}, nil
}

func (h *URLHandler) CreateURL(ctx context.Context, req *CreateURLRequest) (*URLResponse, error) {
	listID, err := parseID(req.ID, "list ID")
	if err != nil {
		return nil, err
	}

	if req.Body.URL == "" || !linklist.IsValidURL(req.Body.URL) {
		return nil, huma.Error400BadRequest("Valid URL is required")
	}

	if _, err := h.store.ListByID(ctx, listID); err != nil {
		if errors.Is(err, linklist.ErrNotFound) {
			return nil, huma.Error404NotFound("List not found")
		}

		h.logger.Error("failed to verify list", zap.Int64("listId", listID), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to add URL")
	}

	normalized := linklist.NormalizeURL(req.Body.URL)
	title, description, image := req.Body.Title, req.Body.Description, req.Body.Image

	if title == "" || description == "" || image == "" {
		title, description, image = h.fillFromMetadata(ctx, normalized, title, description, image)
	}

	url := &linklist.URL{
		URL:         normalized,
		Title:       title,
		Description: description,
		Image:       image,
		ListID:      listID,
	}

	if err := h.store.CreateURL(ctx, url); err != nil {
		if errors.Is(err, linklist.ErrNotFound) {
			// list vanished between the existence check and the insert
			return nil, huma.Error404NotFound("List not found")
		}

		h.logger.Error("database error creating url",
			zap.Int64("listId", listID),
			zap.String("url", normalized),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("Database error while saving URL")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.URLAddedEvent{
		URLID:     url.ID,
		ListID:    listID,
		URL:       url.URL,
		Title:     url.Title,
		CreatedAt: url.CreatedAt,
		RequestID: meta.RequestID,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishURLAdded(event); err != nil {
		h.logger.Error("failed to publish url added event",
			zap.Int64("urlId", url.ID),
			zap.Error(err),
		)
	}

	return &URLResponse{Body: *url}, nil
}

// fillFromMetadata fills only the unset display fields from extracted
// metadata. Extraction failure is logged and swallowed; the URL is stored
// with whatever the caller supplied.
func (h *URLHandler) fillFromMetadata(ctx context.Context, url, title, description, image string) (string, string, string) {
	extractCtx, cancel := context.WithTimeout(ctx, h.extractTimeout)
	defer cancel()

	meta, err := h.extractor.Extract(extractCtx, url)
	if err != nil {
		h.logger.Warn("metadata extraction failed",
			zap.String("url", url),
			zap.Error(err),
		)

		return title, description, image
	}

	if title == "" {
		title = meta.Title
	}

	if description == "" {
		description = meta.Description
	}

	if image == "" {
		image = meta.Image
	}

	return title, description, image
}

func (h *URLHandler) DeleteURL(ctx context.Context, req *DeleteURLRequest) (*SuccessResponse, error) {
	urlID, err := parseID(req.URLID, "URL ID")
	if err != nil {
		return nil, err
	}

	listID, err := parseID(req.ID, "list ID")
	if err != nil {
		return nil, err
	}

	// Scoped to the list in the path; idempotent when nothing matches.
	if err := h.store.DeleteURL(ctx, listID, urlID); err != nil {
		h.logger.Error("failed to delete url",
			zap.Int64("listId", listID),
			zap.Int64("urlId", urlID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError("Failed to delete URL")
	}

	resp := &SuccessResponse{}
	resp.Body.Success = true

	return resp, nil
}
