package analytics

import "context"

// Store persists analytics events consumed off the event stream.
type Store interface {
	SaveListCreated(ctx context.Context, event *ListCreatedEvent) error
	SaveListDeleted(ctx context.Context, event *ListDeletedEvent) error
	SaveURLAdded(ctx context.Context, event *URLAddedEvent) error
}
