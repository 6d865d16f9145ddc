package analytics

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/serroba/linklist/internal/messaging"
	"go.uber.org/zap"
)

// RegisterConsumers attaches one consumer per event topic to the group, all
// persisting into the given store.
func RegisterConsumers(
	group *messaging.ConsumerGroup,
	subscriber message.Subscriber,
	store Store,
	logger *zap.Logger,
) {
	group.Add(messaging.NewConsumer(subscriber, TopicListCreated,
		func(ctx context.Context, event *ListCreatedEvent) error {
			return store.SaveListCreated(ctx, event)
		}, logger))

	group.Add(messaging.NewConsumer(subscriber, TopicListDeleted,
		func(ctx context.Context, event *ListDeletedEvent) error {
			return store.SaveListDeleted(ctx, event)
		}, logger))

	group.Add(messaging.NewConsumer(subscriber, TopicURLAdded,
		func(ctx context.Context, event *URLAddedEvent) error {
			return store.SaveURLAdded(ctx, event)
		}, logger))
}
