package linklist

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a referenced List or URL does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSlugTaken is returned when creating a list whose slug is already in use.
	ErrSlugTaken = errors.New("slug already exists")
)

// Repository defines storage operations for lists and their URLs.
// Create methods assign ID and CreatedAt on the passed entity.
type Repository interface {
	CreateList(ctx context.Context, list *List) error
	Lists(ctx context.Context) ([]List, error)
	ListByID(ctx context.Context, id int64) (*List, error)
	ListBySlug(ctx context.Context, slug string) (*List, error)

	// DeleteList removes the list and every URL referencing it. Deleting a
	// list that does not exist is a no-op.
	DeleteList(ctx context.Context, id int64) error

	CreateURL(ctx context.Context, url *URL) error
	URLs(ctx context.Context, listID int64) ([]URL, error)

	// DeleteURL removes the URL only when it belongs to listID. Deleting a
	// URL that does not exist in that list is a no-op.
	DeleteURL(ctx context.Context, listID, urlID int64) error
}
