// Package lazymaplru caches detached lazymap.Map snapshots, keyed by
// a caller-supplied generation token, so a service can hand out cheap
// O(1)-copy historical views without re-walking a long fragment chain
// on every request.
package lazymaplru

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mohitmv/lazymap"
)

// Cache is a bounded LRU cache of Map[K, V] snapshots, keyed by a
// generation token G (typically a string or an integer sequence
// number).
type Cache[G comparable, K comparable, V any] struct {
	inner *lru.Cache[G, lazymap.Map[K, V]]
}

// New returns a Cache holding at most size snapshots.
func New[G comparable, K comparable, V any](size int) (*Cache[G, K, V], error) {
	inner, err := lru.New[G, lazymap.Map[K, V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[G, K, V]{inner: inner}, nil
}

// Put detaches m and stores it under gen, evicting the least recently
// used entry if the cache is full. The caller's handle m is left
// untouched; Put stores an independent, already-detached copy.
func (c *Cache[G, K, V]) Put(gen G, m lazymap.Map[K, V]) {
	snapshot := m.Copy()
	snapshot.Detach()
	c.inner.Add(gen, snapshot)
}

// Get returns the cached snapshot for gen, if present. The returned
// Map is a Copy that shares structure with the cached entry, so
// mutating it copies on write and leaves the cache's own entry
// untouched.
func (c *Cache[G, K, V]) Get(gen G) (lazymap.Map[K, V], bool) {
	m, ok := c.inner.Get(gen)
	if !ok {
		var zero lazymap.Map[K, V]
		return zero, false
	}
	return m.Copy(), true
}

// Len returns the number of cached snapshots.
func (c *Cache[G, K, V]) Len() int {
	return c.inner.Len()
}

// Purge drops every cached snapshot.
func (c *Cache[G, K, V]) Purge() {
	c.inner.Purge()
}
