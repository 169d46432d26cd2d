package lazymapstore

import (
	"fmt"
	"sync"

	"github.com/mohitmv/lazymap"
)

// MemStore is a transient, in-memory stand-in for Store, intended for
// tests that would otherwise need a real Bolt file. It mirrors
// Store's Snapshot/Restore contract without touching disk.
type MemStore[K comparable, V any] struct {
	mu   sync.Mutex
	rows map[string]entry[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewMemStore returns an empty MemStore.
func NewMemStore[K comparable, V any]() *MemStore[K, V] {
	return &MemStore[K, V]{rows: make(map[string]entry[K, V])}
}

// Snapshot detaches a copy of m and replaces the store's contents
// with its logical view. The caller's handle m is left as it was.
func (s *MemStore[K, V]) Snapshot(m lazymap.Map[K, V]) error {
	detached := m.Copy()
	detached.Detach()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[string]entry[K, V], detached.Size())
	for it := detached.Begin(); !it.IsEnd(); it.Next() {
		s.rows[fmt.Sprintf("%v", it.Key())] = entry[K, V]{key: it.Key(), value: it.Value()}
	}
	return nil
}

// Restore rebuilds a fresh Map[K, V] from the store's current
// contents.
func (s *MemStore[K, V]) Restore() (lazymap.Map[K, V], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := lazymap.New[K, V]()
	for _, e := range s.rows {
		m.InsertOrAssign(e.key, e.value)
	}
	return m, nil
}
