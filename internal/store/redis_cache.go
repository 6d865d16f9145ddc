package store

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/linklist/internal/linklist"
)

// RedisCacheRepository wraps a linklist.Repository with Redis caching for
// reads. List records are cached as hashes keyed by id with a slug index on
// the side; a list's URL collection is cached as a JSON blob. All cache
// operations are best-effort: a Redis failure degrades to the inner store.
type RedisCacheRepository struct {
	inner    linklist.Repository
	client   *redis.Client
	ttl      time.Duration
	prefix   string
	slugsKey string
	urlsKey  string
}

// NewRedisCacheRepository creates a Redis-cached repository decorator.
func NewRedisCacheRepository(
	inner linklist.Repository, client *redis.Client, ttl time.Duration,
) *RedisCacheRepository {
	return &RedisCacheRepository{
		inner:    inner,
		client:   client,
		ttl:      ttl,
		prefix:   "list:",
		slugsKey: "list_slugs",
		urlsKey:  "list_urls:",
	}
}

func (r *RedisCacheRepository) CreateList(ctx context.Context, list *linklist.List) error {
	if err := r.inner.CreateList(ctx, list); err != nil {
		return err
	}

	// Write-through after a successful insert
	r.cacheList(ctx, list)

	return nil
}

func (r *RedisCacheRepository) Lists(ctx context.Context) ([]linklist.List, error) {
	// The full collection is not cached; it changes on every create/delete
	// and the landing page is not the hot path.
	return r.inner.Lists(ctx)
}

func (r *RedisCacheRepository) ListByID(ctx context.Context, id int64) (*linklist.List, error) {
	if list, err := r.listFromCache(ctx, id); err == nil {
		return list, nil
	}

	list, err := r.inner.ListByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.cacheList(ctx, list)

	return list, nil
}

func (r *RedisCacheRepository) ListBySlug(ctx context.Context, slug string) (*linklist.List, error) {
	if idStr, err := r.client.HGet(ctx, r.slugsKey, slug).Result(); err == nil {
		if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
			if list, err := r.listFromCache(ctx, id); err == nil {
				return list, nil
			}
		}
	}

	list, err := r.inner.ListBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	r.cacheList(ctx, list)

	return list, nil
}

func (r *RedisCacheRepository) DeleteList(ctx context.Context, id int64) error {
	// Look up the slug before the row disappears so the index entry can go too.
	var slug string
	if list, err := r.listFromCache(ctx, id); err == nil {
		slug = list.Slug
	} else if list, err := r.inner.ListByID(ctx, id); err == nil {
		slug = list.Slug
	}

	if err := r.inner.DeleteList(ctx, id); err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.prefix+strconv.FormatInt(id, 10))
	pipe.Del(ctx, r.urlsKey+strconv.FormatInt(id, 10))

	if slug != "" {
		pipe.HDel(ctx, r.slugsKey, slug)
	}

	_, _ = pipe.Exec(ctx)

	return nil
}

func (r *RedisCacheRepository) CreateURL(ctx context.Context, url *linklist.URL) error {
	if err := r.inner.CreateURL(ctx, url); err != nil {
		return err
	}

	r.invalidateURLs(ctx, url.ListID)

	return nil
}

func (r *RedisCacheRepository) URLs(ctx context.Context, listID int64) ([]linklist.URL, error) {
	key := r.urlsKey + strconv.FormatInt(listID, 10)

	if payload, err := r.client.Get(ctx, key).Bytes(); err == nil {
		var urls []linklist.URL
		if err := json.Unmarshal(payload, &urls); err == nil {
			return urls, nil
		}
	}

	urls, err := r.inner.URLs(ctx, listID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(urls); err == nil {
		_ = r.client.Set(ctx, key, payload, r.ttl).Err()
	}

	return urls, nil
}

func (r *RedisCacheRepository) DeleteURL(ctx context.Context, listID, urlID int64) error {
	if err := r.inner.DeleteURL(ctx, listID, urlID); err != nil {
		return err
	}

	r.invalidateURLs(ctx, listID)

	return nil
}

func (r *RedisCacheRepository) listFromCache(ctx context.Context, id int64) (*linklist.List, error) {
	result, err := r.client.HGetAll(ctx, r.prefix+strconv.FormatInt(id, 10)).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, linklist.ErrNotFound
	}

	var createdAt time.Time
	if nanos, err := strconv.ParseInt(result["created_at"], 10, 64); err == nil {
		createdAt = time.Unix(0, nanos).UTC()
	}

	return &linklist.List{
		ID:          id,
		Title:       result["title"],
		Description: result["description"],
		Slug:        result["slug"],
		CreatedAt:   createdAt,
	}, nil
}

func (r *RedisCacheRepository) cacheList(ctx context.Context, list *linklist.List) {
	key := r.prefix + strconv.FormatInt(list.ID, 10)

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"title":       list.Title,
		"description": list.Description,
		"slug":        list.Slug,
		"created_at":  list.CreatedAt.UnixNano(),
	})

	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}

	pipe.HSet(ctx, r.slugsKey, list.Slug, list.ID)

	_, _ = pipe.Exec(ctx)
}

func (r *RedisCacheRepository) invalidateURLs(ctx context.Context, listID int64) {
	_ = r.client.Del(ctx, r.urlsKey+strconv.FormatInt(listID, 10)).Err()
}

// Compile-time check.
var _ linklist.Repository = (*RedisCacheRepository)(nil)
