package store

import (
	"context"

	"github.com/serroba/linklist/internal/analytics"
	"go.uber.org/zap"
)

// Noop is a no-op implementation of analytics.Store that only logs events.
type Noop struct {
	logger *zap.Logger
}

// NewNoop creates a new no-op analytics store.
func NewNoop(logger *zap.Logger) *Noop {
	return &Noop{logger: logger}
}

func (n *Noop) SaveListCreated(_ context.Context, event *analytics.ListCreatedEvent) error {
	n.logger.Info("list created event received",
		zap.Int64("listId", event.ListID),
		zap.String("slug", event.Slug),
		zap.Time("createdAt", event.CreatedAt),
	)

	return nil
}

func (n *Noop) SaveListDeleted(_ context.Context, event *analytics.ListDeletedEvent) error {
	n.logger.Info("list deleted event received",
		zap.Int64("listId", event.ListID),
		zap.Time("deletedAt", event.DeletedAt),
	)

	return nil
}

func (n *Noop) SaveURLAdded(_ context.Context, event *analytics.URLAddedEvent) error {
	n.logger.Info("url added event received",
		zap.Int64("urlId", event.URLID),
		zap.Int64("listId", event.ListID),
		zap.String("url", event.URL),
	)

	return nil
}

// Compile-time check.
var _ analytics.Store = (*Noop)(nil)
