package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/serroba/linklist/internal/handlers"
	"github.com/serroba/linklist/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOutput struct {
	Body string `json:"body"`
}

// serveWithMeta runs a single request through the middleware and returns the
// metadata the handler observed.
func serveWithMeta(t *testing.T, prepare func(*http.Request)) handlers.RequestMeta {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.RequestMeta(api))

	metaChan := make(chan handlers.RequestMeta, 1)

	huma.Get(api, "/test", func(ctx context.Context, _ *struct{}) (*testOutput, error) {
		metaChan <- handlers.RequestMetaFromContext(ctx)

		return &testOutput{Body: "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if prepare != nil {
		prepare(req)
	}

	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	return <-metaChan
}

func TestRequestMeta(t *testing.T) {
	t.Run("extracts user-agent and referrer", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Header.Set("User-Agent", "TestAgent/1.0")
			req.Header.Set("Referer", "https://example.com")
		})

		assert.Equal(t, "TestAgent/1.0", meta.UserAgent)
		assert.Equal(t, "https://example.com", meta.Referrer)
	})

	t.Run("assigns a unique request id", func(t *testing.T) {
		first := serveWithMeta(t, nil)
		second := serveWithMeta(t, nil)

		assert.NotEmpty(t, first.RequestID)
		assert.NotEmpty(t, second.RequestID)
		assert.NotEqual(t, first.RequestID, second.RequestID)
	})

	t.Run("extracts IP from X-Forwarded-For with single IP", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Header.Set("X-Forwarded-For", "192.168.1.1")
		})

		assert.Equal(t, "192.168.1.1", meta.ClientIP)
	})

	t.Run("extracts first IP from X-Forwarded-For with multiple IPs", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1, 172.16.0.1")
		})

		assert.Equal(t, "192.168.1.1", meta.ClientIP)
	})

	t.Run("extracts IP from X-Real-IP when X-Forwarded-For is absent", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Header.Set("X-Real-IP", "10.0.0.1")
		})

		assert.Equal(t, "10.0.0.1", meta.ClientIP)
	})

	t.Run("falls back to host when no IP headers present", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Host = "192.0.2.1:1234"
		})

		assert.Equal(t, "192.0.2.1", meta.ClientIP)
	})

	t.Run("keeps a bare ipv6 host intact", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Host = "::1"
		})

		assert.Equal(t, "::1", meta.ClientIP)
	})

	t.Run("strips the port from a bracketed ipv6 host", func(t *testing.T) {
		meta := serveWithMeta(t, func(req *http.Request) {
			req.Host = "[::1]:8080"
		})

		assert.Equal(t, "::1", meta.ClientIP)
	})
}
