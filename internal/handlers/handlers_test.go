package handlers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/serroba/linklist/internal/analytics"
	"github.com/serroba/linklist/internal/handlers"
	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/messaging"
	"github.com/serroba/linklist/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testExtractTimeout = time.Second

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() messaging.Publish[T] {
	return func(_ *T) error { return nil }
}

// errorPublish returns a publish function that always fails.
func errorPublish[T any](err error) messaging.Publish[T] {
	return func(_ *T) error { return err }
}

func newListHandler(s linklist.Repository) *handlers.ListHandler {
	return handlers.NewListHandler(
		s,
		noopPublish[analytics.ListCreatedEvent](),
		noopPublish[analytics.ListDeletedEvent](),
		zap.NewNop(),
	)
}

func newURLHandler(s linklist.Repository) *handlers.URLHandler {
	return handlers.NewURLHandler(
		s,
		metadata.NewStub(),
		testExtractTimeout,
		noopPublish[analytics.URLAddedEvent](),
		zap.NewNop(),
	)
}

// failingExtractor always fails, standing in for an unreachable host.
type failingExtractor struct{}

func (failingExtractor) Extract(_ context.Context, _ string) (*metadata.Metadata, error) {
	return nil, errors.New("extraction failed")
}

// hangingExtractor blocks until its context expires.
type hangingExtractor struct{}

func (hangingExtractor) Extract(ctx context.Context, _ string) (*metadata.Metadata, error) {
	<-ctx.Done()

	return nil, ctx.Err()
}

// requireStatus asserts that err is the JSON error envelope with the given
// status.
func requireStatus(t *testing.T, err error, status int) *handlers.ErrorResponse {
	t.Helper()

	var envelope *handlers.ErrorResponse
	require.ErrorAs(t, err, &envelope)
	assert.Equal(t, status, envelope.GetStatus())

	return envelope
}
