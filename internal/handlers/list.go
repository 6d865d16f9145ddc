package handlers

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linklist/internal/analytics"
	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/messaging"
	"go.uber.org/zap"
)

// ListHandler handles list CRUD operations.
type ListHandler struct {
	store              linklist.Repository
	publishListCreated messaging.Publish[analytics.ListCreatedEvent]
	publishListDeleted messaging.Publish[analytics.ListDeletedEvent]
	logger             *zap.Logger
}

// NewListHandler creates a new list handler.
func NewListHandler(
	store linklist.Repository,
	publishListCreated messaging.Publish[analytics.ListCreatedEvent],
	publishListDeleted messaging.Publish[analytics.ListDeletedEvent],
	logger *zap.Logger,
) *ListHandler {
	return &ListHandler{
		store:              store,
		publishListCreated: publishListCreated,
		publishListDeleted: publishListDeleted,
		logger:             logger,
	}
}

// parseID validates a positive integer path parameter. The parameter is
// declared as a string so a malformed ID answers 400, not a schema 422.
func parseID(raw, label string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, huma.Error400BadRequest("Invalid " + label)
	}

	return id, nil
}

func (h *ListHandler) GetLists(ctx context.Context, _ *struct{}) (*ListsResponse, error) {
	lists, err := h.store.Lists(ctx)
	if err != nil {
		h.logger.Error("failed to fetch lists", zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to fetch lists")
	}

	return &ListsResponse{Body: lists}, nil
}

func (h *ListHandler) CreateList(ctx context.Context, req *CreateListRequest) (*ListResponse, error) {
	if req.Body.Title == "" {
		return nil, huma.Error400BadRequest("Title is required")
	}

	finalSlug := req.Body.Slug
	if finalSlug == "" {
		finalSlug = linklist.GenerateSlug(req.Body.Title)
	}

	if finalSlug == "" {
		return nil, huma.Error400BadRequest("Title does not yield a usable slug; provide one explicitly")
	}

	// Fast-path check for a friendlier message; the unique index on slug is
	// the real guarantee under concurrent creates.
	if _, err := h.store.ListBySlug(ctx, finalSlug); err == nil {
		return nil, huma.Error400BadRequest("Slug already exists")
	} else if !errors.Is(err, linklist.ErrNotFound) {
		h.logger.Error("failed to check slug", zap.String("slug", finalSlug), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to create list")
	}

	list := &linklist.List{
		Title:       req.Body.Title,
		Description: req.Body.Description,
		Slug:        finalSlug,
	}

	if err := h.store.CreateList(ctx, list); err != nil {
		if errors.Is(err, linklist.ErrSlugTaken) {
			return nil, huma.Error400BadRequest("Slug already exists")
		}

		h.logger.Error("failed to create list", zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to create list")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.ListCreatedEvent{
		ListID:    list.ID,
		Title:     list.Title,
		Slug:      list.Slug,
		CreatedAt: list.CreatedAt,
		RequestID: meta.RequestID,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}

	if err := h.publishListCreated(event); err != nil {
		h.logger.Error("failed to publish list created event",
			zap.Int64("listId", list.ID),
			zap.Error(err),
		)
	}

	return &ListResponse{Body: *list}, nil
}

func (h *ListHandler) GetList(ctx context.Context, req *GetListRequest) (*ListResponse, error) {
	id, err := parseID(req.ID, "list ID")
	if err != nil {
		return nil, err
	}

	list, err := h.store.ListByID(ctx, id)
	if err != nil {
		if errors.Is(err, linklist.ErrNotFound) {
			return nil, huma.Error404NotFound("List not found")
		}

		h.logger.Error("failed to fetch list", zap.Int64("listId", id), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to fetch list")
	}

	return &ListResponse{Body: *list}, nil
}

func (h *ListHandler) GetListBySlug(ctx context.Context, req *GetListBySlugRequest) (*ListResponse, error) {
	list, err := h.store.ListBySlug(ctx, req.Slug)
	if err != nil {
		if errors.Is(err, linklist.ErrNotFound) {
			return nil, huma.Error404NotFound("List not found")
		}

		h.logger.Error("failed to fetch list by slug", zap.String("slug", req.Slug), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to fetch list")
	}

	return &ListResponse{Body: *list}, nil
}

func (h *ListHandler) DeleteList(ctx context.Context, req *DeleteListRequest) (*SuccessResponse, error) {
	id, err := parseID(req.ID, "list ID")
	if err != nil {
		return nil, err
	}

	// Idempotent: deleting a list that never existed still answers success.
	if err := h.store.DeleteList(ctx, id); err != nil {
		h.logger.Error("failed to delete list", zap.Int64("listId", id), zap.Error(err))

		return nil, huma.Error500InternalServerError("Failed to delete list")
	}

	meta := RequestMetaFromContext(ctx)
	event := &analytics.ListDeletedEvent{
		ListID:    id,
		DeletedAt: time.Now().UTC(),
		RequestID: meta.RequestID,
		ClientIP:  meta.ClientIP,
	}

	if err := h.publishListDeleted(event); err != nil {
		h.logger.Error("failed to publish list deleted event",
			zap.Int64("listId", id),
			zap.Error(err),
		)
	}

	resp := &SuccessResponse{}
	resp.Body.Success = true

	return resp, nil
}
