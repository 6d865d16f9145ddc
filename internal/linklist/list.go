package linklist

import "time"

// List is a named, shareable collection of URLs identified by a unique slug.
type List struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Slug        string    `json:"slug"`
	CreatedAt   time.Time `json:"createdAt"`
}

// URL is a single bookmarked link belonging to exactly one List.
type URL struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	ListID      int64     `json:"listId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewURLInput is the draft input for adding a URL to a list. Only URL is
// required; unset display fields are filled from extracted metadata.
type NewURLInput struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
