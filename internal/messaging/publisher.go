package messaging

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Publish is a function that publishes a typed event to its topic.
type Publish[T any] func(event *T) error

// NewPublishFunc binds a topic to an event type on top of a raw publisher.
// Events are JSON-encoded; message IDs are fresh UUIDs.
func NewPublishFunc[T any](publisher message.Publisher, topic string) Publish[T] {
	return func(event *T) error {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		return publisher.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
	}
}

// PublisherGroup owns the lifecycle of the underlying publisher so the DI
// container can shut it down once, regardless of how many typed publish
// functions were derived from it.
type PublisherGroup struct {
	publisher message.Publisher
}

// NewPublisherGroup creates a new publisher group.
func NewPublisherGroup(publisher message.Publisher) *PublisherGroup {
	return &PublisherGroup{publisher: publisher}
}

// Publisher returns the underlying publisher for deriving typed publish functions.
func (g *PublisherGroup) Publisher() message.Publisher {
	return g.publisher
}

// Shutdown closes the underlying publisher.
func (g *PublisherGroup) Shutdown() error {
	return g.publisher.Close()
}
