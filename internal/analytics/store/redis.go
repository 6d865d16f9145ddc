package store

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/serroba/linklist/internal/analytics"
)

// Redis keeps running counters in Redis hashes: global totals plus a
// per-list URL count. Counters survive consumer restarts since increments
// are applied server-side.
type Redis struct {
	client      *redis.Client
	totalsKey   string
	listURLsKey string
}

// NewRedis creates a Redis-backed analytics store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client:      client,
		totalsKey:   "stats:totals",
		listURLsKey: "stats:list_urls",
	}
}

func (r *Redis) SaveListCreated(ctx context.Context, _ *analytics.ListCreatedEvent) error {
	return r.client.HIncrBy(ctx, r.totalsKey, "lists_created", 1).Err()
}

func (r *Redis) SaveListDeleted(ctx context.Context, event *analytics.ListDeletedEvent) error {
	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, r.totalsKey, "lists_deleted", 1)
	pipe.HDel(ctx, r.listURLsKey, strconv.FormatInt(event.ListID, 10))
	_, err := pipe.Exec(ctx)

	return err
}

func (r *Redis) SaveURLAdded(ctx context.Context, event *analytics.URLAddedEvent) error {
	pipe := r.client.Pipeline()
	pipe.HIncrBy(ctx, r.totalsKey, "urls_added", 1)
	pipe.HIncrBy(ctx, r.listURLsKey, strconv.FormatInt(event.ListID, 10), 1)
	_, err := pipe.Exec(ctx)

	return err
}

// Totals returns the global counters. Missing fields read as zero.
func (r *Redis) Totals(ctx context.Context) (map[string]int64, error) {
	raw, err := r.client.HGetAll(ctx, r.totalsKey).Result()
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, len(raw))

	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}

		totals[field] = n
	}

	return totals, nil
}

// Compile-time check.
var _ analytics.Store = (*Redis)(nil)
