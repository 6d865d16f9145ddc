package metadata

import "context"

// Metadata holds best-effort display fields derived from a URL. Any field
// may be empty when the source does not provide it.
type Metadata struct {
	Title       string
	Description string
	Image       string
}

// Extractor derives display metadata for a URL. Implementations should
// prefer returning partial results over failing outright; callers treat a
// returned error as "no metadata" and keep whatever the user supplied.
type Extractor interface {
	Extract(ctx context.Context, rawURL string) (*Metadata, error)
}
