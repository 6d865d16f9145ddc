package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/serroba/linklist/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockChecker struct {
	err error
}

func (m *mockChecker) Ping(_ context.Context) error {
	return m.err
}

func TestHandler_Check(t *testing.T) {
	t.Run("returns ok when all dependencies are healthy", func(t *testing.T) {
		handler := health.NewHandler(&mockChecker{}, &mockChecker{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
		assert.Equal(t, "healthy", resp.Body.Database)
		assert.Equal(t, "healthy", resp.Body.Redis)
	})

	t.Run("returns degraded when the database is unhealthy", func(t *testing.T) {
		handler := health.NewHandler(
			&mockChecker{err: errors.New("connection refused")},
			&mockChecker{},
		)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Database)
		assert.Equal(t, "healthy", resp.Body.Redis)
	})

	t.Run("returns degraded when redis is unhealthy", func(t *testing.T) {
		handler := health.NewHandler(
			&mockChecker{},
			&mockChecker{err: errors.New("connection refused")},
		)

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "degraded", resp.Body.Status)
		assert.Equal(t, "unhealthy", resp.Body.Redis)
	})

	t.Run("always-healthy placeholder never degrades", func(t *testing.T) {
		handler := health.NewHandler(health.AlwaysHealthy{}, health.AlwaysHealthy{})

		resp, err := handler.Check(context.Background(), nil)

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Body.Status)
	})
}
