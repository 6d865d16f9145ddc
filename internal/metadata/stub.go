package metadata

import (
	"context"
	"net/url"
)

// PlaceholderImage is the preview image used when nothing better is known.
const PlaceholderImage = "https://dummyimage.com/200x200/efefef/999999&text=No+Image"

// Stub is an offline Extractor: the hostname as title, no description, and
// a fixed placeholder image. It is the default so URL creation never depends
// on outbound network access.
type Stub struct{}

// NewStub creates a stub extractor.
func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) Extract(_ context.Context, rawURL string) (*Metadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		Title: u.Hostname(),
		Image: PlaceholderImage,
	}, nil
}

// Compile-time check.
var _ Extractor = (*Stub)(nil)
