package analytics

import "time"

// Topics for linklist domain events.
const (
	TopicListCreated = "list.created"
	TopicListDeleted = "list.deleted"
	TopicURLAdded    = "url.added"
)

// ListCreatedEvent is emitted when a new list is created.
type ListCreatedEvent struct {
	ListID    int64     `json:"listId"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// ListDeletedEvent is emitted when a list and its URLs are removed.
type ListDeletedEvent struct {
	ListID    int64     `json:"listId"`
	DeletedAt time.Time `json:"deletedAt"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
}

// URLAddedEvent is emitted when a URL is added to a list.
type URLAddedEvent struct {
	URLID     int64     `json:"urlId"`
	ListID    int64     `json:"listId"`
	URL       string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}
