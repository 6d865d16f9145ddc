//go:build integration

package store_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/redis/go-redis/v9"
	"github.com/serroba/linklist/internal/linklist"
	"github.com/serroba/linklist/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

func TestRedisCacheRepositoryIntegration(t *testing.T) {
	ctx := context.Background()

	client := redis.NewClient(&redis.Options{Addr: getRedisAddr()})
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	slugGen, _ := nanoid.CustomASCII("abcdefghijklmnopqrstuvwxyz", 12)

	t.Run("reads come from cache after first hit", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewRedisCacheRepository(inner, client, time.Minute)

		list := &linklist.List{Title: "Cached", Slug: slugGen()}
		require.NoError(t, cached.CreateList(ctx, list))

		got, err := cached.ListByID(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, list.Slug, got.Slug)

		// Remove from the inner store; the cache should still answer.
		require.NoError(t, inner.DeleteList(ctx, list.ID))

		got, err = cached.ListByID(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, list.Title, got.Title)

		bySlug, err := cached.ListBySlug(ctx, list.Slug)
		require.NoError(t, err)
		assert.Equal(t, list.ID, bySlug.ID)
	})

	t.Run("delete evicts record, slug index and url collection", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewRedisCacheRepository(inner, client, time.Minute)

		list := &linklist.List{Title: "Evicted", Slug: slugGen()}
		require.NoError(t, cached.CreateList(ctx, list))
		require.NoError(t, cached.CreateURL(ctx, &linklist.URL{URL: "https://example.com", ListID: list.ID}))

		// Prime both caches
		_, err := cached.ListByID(ctx, list.ID)
		require.NoError(t, err)
		_, err = cached.URLs(ctx, list.ID)
		require.NoError(t, err)

		require.NoError(t, cached.DeleteList(ctx, list.ID))

		_, err = cached.ListByID(ctx, list.ID)
		assert.ErrorIs(t, err, linklist.ErrNotFound)

		_, err = cached.ListBySlug(ctx, list.Slug)
		assert.ErrorIs(t, err, linklist.ErrNotFound)

		urls, err := cached.URLs(ctx, list.ID)
		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("url writes invalidate the cached collection", func(t *testing.T) {
		inner := store.NewMemoryStore()
		cached := store.NewRedisCacheRepository(inner, client, time.Minute)

		list := &linklist.List{Title: "URLs", Slug: slugGen()}
		require.NoError(t, cached.CreateList(ctx, list))

		u1 := &linklist.URL{URL: "https://one.com", ListID: list.ID}
		require.NoError(t, cached.CreateURL(ctx, u1))

		urls, err := cached.URLs(ctx, list.ID)
		require.NoError(t, err)
		require.Len(t, urls, 1)

		u2 := &linklist.URL{URL: "https://two.com", ListID: list.ID}
		require.NoError(t, cached.CreateURL(ctx, u2))

		urls, err = cached.URLs(ctx, list.ID)
		require.NoError(t, err)
		require.Len(t, urls, 2)
		assert.Equal(t, "https://two.com", urls[0].URL)

		require.NoError(t, cached.DeleteURL(ctx, list.ID, u2.ID))

		urls, err = cached.URLs(ctx, list.ID)
		require.NoError(t, err)
		require.Len(t, urls, 1)

		// Cleanup
		require.NoError(t, cached.DeleteList(ctx, list.ID))
	})
}
