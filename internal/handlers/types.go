package handlers

import "github.com/serroba/linklist/internal/linklist"

// CreateListRequest is the request body for creating a list. All fields are
// schema-optional; the handler enforces the title requirement so a missing
// title answers 400 rather than a schema 422.
type CreateListRequest struct {
	Body struct {
		Title       string `doc:"List title"                                 example:"My Awesome List"  json:"title,omitempty"`
		Description string `doc:"Optional description"                       json:"description,omitempty"`
		Slug        string `doc:"Custom slug; derived from title when empty" example:"my-awesome-list"  json:"slug,omitempty"`
	}
}

// ListResponse is the response carrying a single list.
type ListResponse struct {
	Body linklist.List
}

// ListsResponse is the response carrying all lists, newest first.
type ListsResponse struct {
	Body []linklist.List
}

// GetListRequest is the request for fetching a list by ID.
type GetListRequest struct {
	ID string `doc:"List ID" example:"1" path:"id"`
}

// GetListBySlugRequest is the request for fetching a list by slug.
type GetListBySlugRequest struct {
	Slug string `doc:"List slug" example:"my-awesome-list" path:"slug"`
}

// DeleteListRequest is the request for deleting a list and its URLs.
type DeleteListRequest struct {
	ID string `doc:"List ID" example:"1" path:"id"`
}

// ListURLsRequest is the request for fetching the URLs of a list.
type ListURLsRequest struct {
	ID string `doc:"List ID" example:"1" path:"id"`
}

// CreateURLRequest is the request body for adding a URL to a list. Display
// fields left empty are filled from extracted metadata.
type CreateURLRequest struct {
	ID   string `doc:"List ID" example:"1" path:"id"`
	Body struct {
		URL         string `doc:"The URL to bookmark; scheme defaults to https" example:"example.com" json:"url,omitempty"`
		Title       string `doc:"Optional display title"                        json:"title,omitempty"`
		Description string `doc:"Optional description"                          json:"description,omitempty"`
		Image       string `doc:"Optional preview image URL"                    json:"image,omitempty"`
	}
}

// URLResponse is the response carrying a single URL.
type URLResponse struct {
	Body linklist.URL
}

// URLsResponse is the response carrying a list's URLs, newest first.
type URLsResponse struct {
	Body []linklist.URL
}

// DeleteURLRequest is the request for removing a URL from a list.
type DeleteURLRequest struct {
	ID    string `doc:"List ID" example:"1" path:"id"`
	URLID string `doc:"URL ID"  example:"1" path:"urlId"`
}

// SuccessResponse is the body returned by delete operations.
type SuccessResponse struct {
	Body struct {
		Success bool `doc:"Always true" json:"success"`
	}
}
