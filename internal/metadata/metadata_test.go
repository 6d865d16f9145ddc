package metadata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/serroba/linklist/internal/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStubExtract(t *testing.T) {
	t.Run("returns hostname title and placeholder image", func(t *testing.T) {
		stub := metadata.NewStub()

		meta, err := stub.Extract(context.Background(), "https://example.com/some/path")

		require.NoError(t, err)
		assert.Equal(t, "example.com", meta.Title)
		assert.Empty(t, meta.Description)
		assert.Equal(t, metadata.PlaceholderImage, meta.Image)
	})

	t.Run("strips port from title", func(t *testing.T) {
		stub := metadata.NewStub()

		meta, err := stub.Extract(context.Background(), "http://localhost:8080/x")

		require.NoError(t, err)
		assert.Equal(t, "localhost", meta.Title)
	})
}

func TestHTMLExtract(t *testing.T) {
	t.Run("reads title and open graph tags", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><head>
				<title>Fallback Title</title>
				<meta property="og:title" content="OG Title">
				<meta property="og:description" content="OG Description">
				<meta property="og:image" content="https://cdn.example.com/img.png">
			</head><body></body></html>`))
		}))
		defer srv.Close()

		extractor := metadata.NewHTMLExtractor(srv.Client(), zap.NewNop())

		meta, err := extractor.Extract(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "OG Title", meta.Title)
		assert.Equal(t, "OG Description", meta.Description)
		assert.Equal(t, "https://cdn.example.com/img.png", meta.Image)
	})

	t.Run("falls back to title tag and description meta", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html><head>
				<title>  Page Title  </title>
				<meta name="description" content="Plain description">
			</head><body></body></html>`))
		}))
		defer srv.Close()

		extractor := metadata.NewHTMLExtractor(srv.Client(), zap.NewNop())

		meta, err := extractor.Extract(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Page Title", meta.Title)
		assert.Equal(t, "Plain description", meta.Description)
		assert.Empty(t, meta.Image)
	})

	t.Run("tolerates malformed html with partial fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<title>Broken Page</title><meta property="og:image"><p>unclosed`))
		}))
		defer srv.Close()

		extractor := metadata.NewHTMLExtractor(srv.Client(), zap.NewNop())

		meta, err := extractor.Extract(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "Broken Page", meta.Title)
		assert.Empty(t, meta.Image)
	})

	t.Run("fails on non-200 responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		extractor := metadata.NewHTMLExtractor(srv.Client(), zap.NewNop())

		_, err := extractor.Extract(context.Background(), srv.URL)

		assert.Error(t, err)
	})

	t.Run("respects context timeout on hung hosts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer srv.Close()

		extractor := metadata.NewHTMLExtractor(srv.Client(), zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := extractor.Extract(ctx, srv.URL)

		assert.Error(t, err)
	})
}
