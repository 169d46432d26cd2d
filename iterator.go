package lazymap

import "iter"

// Iterator is a forward, read-only cursor over the logical view a Map
// held at the time the iterator was constructed. The zero Iterator
// denotes end. Behavior is undefined if the source Map is mutated
// while an Iterator over it is in use.
type Iterator[K comparable, V any] struct {
	head    *fragment[K, V] // the handle's head at construction; used for shadow checks
	current *fragment[K, V] // fragment currently being scanned, nil means end
	keys    []K             // snapshot of current.locals' keys
	idx     int             // position within keys
}

// Begin returns an iterator positioned at the first live,
// non-shadowed entry in m's logical view, or an end iterator if m is
// empty.
func (m Map[K, V]) Begin() Iterator[K, V] {
	it := Iterator[K, V]{head: m.head, current: m.head}
	it.loadKeys()
	it.advanceToValid()
	return it
}

// End returns the end iterator.
func (m Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// Find returns an iterator positioned at k if it is live in m, or the
// end iterator otherwise.
func (m Map[K, V]) Find(k K) Iterator[K, V] {
	owner := m.head.owner(k)
	if owner == nil {
		return Iterator[K, V]{}
	}
	it := Iterator[K, V]{head: m.head, current: owner}
	it.loadKeys()
	for i, kk := range it.keys {
		if kk == k {
			it.idx = i
			return it
		}
	}
	// unreachable: owner's locals must contain k
	return Iterator[K, V]{}
}

// All returns a push-style iterator over m's logical view, for use
// with range-over-func: for k, v := range m.All() { ... }.
func (m Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := m.Begin(); !it.IsEnd(); it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

func (it *Iterator[K, V]) loadKeys() {
	if it.current == nil {
		it.keys = nil
		it.idx = 0
		return
	}
	it.keys = make([]K, 0, len(it.current.locals))
	for k := range it.current.locals {
		it.keys = append(it.keys, k)
	}
	it.idx = 0
}

// shadowed reports whether k is bound or tombstoned by a fragment
// strictly nearer than it.current in the chain rooted at it.head.
func (it *Iterator[K, V]) shadowed(k K) bool {
	for f := it.head; f != it.current; f = f.parent {
		if _, ok := f.locals[k]; ok {
			return true
		}
		if _, ok := f.tombstones[k]; ok {
			return true
		}
	}
	return false
}

// advanceToValid implements the scan routine from the current
// (current, idx) position: climb to a non-empty position, then
// shadow-check, repeating until a valid position is found or the
// chain is exhausted.
func (it *Iterator[K, V]) advanceToValid() {
	for {
		for it.idx >= len(it.keys) {
			if it.current == nil || it.current.parent == nil {
				it.current = nil
				it.keys = nil
				it.idx = 0
				return
			}
			it.current = it.current.parent
			it.loadKeys()
		}
		if it.shadowed(it.keys[it.idx]) {
			it.idx++
			continue
		}
		return
	}
}

// Next advances the iterator to the next valid position, or to end.
// Next on an end iterator is undefined behavior.
func (it *Iterator[K, V]) Next() {
	it.idx++
	it.advanceToValid()
}

// IsEnd reports whether the iterator has no current position.
func (it Iterator[K, V]) IsEnd() bool {
	return it.current == nil
}

// Key returns the key at the current position. Calling Key on an end
// iterator is undefined behavior.
func (it Iterator[K, V]) Key() K {
	return it.keys[it.idx]
}

// Value returns the value at the current position. Calling Value on
// an end iterator is undefined behavior.
func (it Iterator[K, V]) Value() V {
	return it.current.locals[it.keys[it.idx]]
}

// Equal reports whether it and other denote the same position.
// Comparing iterators from different Maps is undefined behavior.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	if it.current == nil || other.current == nil {
		return it.current == nil && other.current == nil
	}
	if it.current != other.current {
		return false
	}
	return it.keys[it.idx] == other.keys[other.idx]
}
