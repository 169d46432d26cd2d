package lazymapstore

import (
	"context"
	"time"

	"github.com/go-redis/cache/v9"
	"github.com/redis/go-redis/v9"

	"github.com/mohitmv/lazymap"
)

// RemoteCache is an optional, shared cross-process cache tier for
// detached Map snapshots, keyed by a caller-supplied generation
// token (a commit hash, a logical clock value, anything stable for
// the lifetime of one snapshot). It is entirely optional: no other
// type in this module holds or calls a RemoteCache.
type RemoteCache[K comparable, V any] struct {
	data *cache.Cache
	ttl  time.Duration
}

// NewRemoteCache dials redisURL and returns a RemoteCache backed by
// go-redis/cache's two-tier (in-process TinyLFU + Redis) cache.
func NewRemoteCache[K comparable, V any](redisURL string, ttl time.Duration) (*RemoteCache[K, V], error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RemoteCache[K, V]{
		data: cache.New(&cache.Options{
			Redis:      rdb,
			LocalCache: cache.NewTinyLFU(1000, ttl),
		}),
		ttl: ttl,
	}, nil
}

func remoteCacheKey(gen string) string {
	return "lazymap/snapshot/" + gen
}

// Get returns the cached snapshot for gen, if present.
func (c *RemoteCache[K, V]) Get(ctx context.Context, gen string) (lazymap.Map[K, V], bool, error) {
	var entries []lazymap.Entry[K, V]
	err := c.data.Get(ctx, remoteCacheKey(gen), &entries)
	if err == cache.ErrCacheMiss {
		var zero lazymap.Map[K, V]
		return zero, false, nil
	}
	if err != nil {
		var zero lazymap.Map[K, V]
		return zero, false, err
	}
	return lazymap.NewFromEntries(entries...), true, nil
}

// Set detaches a copy of m and stores its logical view under gen.
// The caller's handle m is left as it was.
func (c *RemoteCache[K, V]) Set(ctx context.Context, gen string, m lazymap.Map[K, V]) error {
	detached := m.Copy()
	detached.Detach()

	entries := make([]lazymap.Entry[K, V], 0, detached.Size())
	for it := detached.Begin(); !it.IsEnd(); it.Next() {
		entries = append(entries, lazymap.Entry[K, V]{Key: it.Key(), Value: it.Value()})
	}
	return c.data.Set(&cache.Item{
		Ctx:   ctx,
		Key:   remoteCacheKey(gen),
		Value: entries,
		TTL:   c.ttl,
	})
}
