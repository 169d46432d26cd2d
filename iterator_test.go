package lazymap

import "testing"

func TestIterationWithIntermediateDeletions(t *testing.T) {
	// S4
	m1 := NewFromEntries(Entry[int, int]{1, 10}, Entry[int, int]{2, 20}, Entry[int, int]{3, 30})
	m2 := m1.Copy()
	m2.Insert(4, 40)
	m2.Detach()
	m3 := m2.Copy()
	m2.Insert(5, 50)

	deepEqual(t, sortedInts(keysOf(m2)), []int{1, 2, 3, 4, 5})

	m4 := m3.Copy()
	m4.Erase(3)
	m4.InsertOrAssign(2, 21)
	deepEqual(t, sortedInts(keysOf(m4)), []int{1, 2, 4})
	v, _ := m4.At(2)
	deepEqual(t, v, 21)

	m5 := m4.Copy()
	m5.Clear()
	deepEqual(t, sortedInts(keysOf(m4)), []int{1, 2, 4})
	isempty(t, keysOf(m5))

	m5 = m4.Copy()
	m5.Insert(12, 33)
	deepEqual(t, sortedInts(keysOf(m5)), []int{1, 2, 4, 12})
	m5.Erase(12)

	m6 := m5.Copy()
	deepEqual(t, m6.Depth(), 2)
	m6.Insert(13, 33)
	deepEqual(t, sortedInts(keysOf(m6)), []int{1, 2, 4, 13})
	deepEqual(t, m6.Depth(), 3)
}

func TestIterationYieldsNoKeyTwice(t *testing.T) {
	// P6
	m1 := NewFromEntries(Entry[int, int]{1, 10}, Entry[int, int]{2, 20}, Entry[int, int]{3, 30})
	m2 := m1.Copy()
	m2.InsertOrAssign(2, 21)
	m2.Erase(1)
	m2.Insert(4, 40)

	seen := map[int]int{}
	for it := m2.Begin(); !it.IsEnd(); it.Next() {
		seen[it.Key()]++
	}
	for k, n := range seen {
		if n != 1 {
			t.Fatalf("key %v yielded %d times, wanted 1", k, n)
		}
	}
	deepEqual(t, len(seen), m2.Size())
}

func TestFindPositionsAtKeyOrEnd(t *testing.T) {
	m := NewFromEntries(Entry[string, int]{"a", 1}, Entry[string, int]{"b", 2})
	it := m.Find("a")
	if it.IsEnd() {
		t.Fatalf("Find(a) should not be end")
	}
	deepEqual(t, it.Key(), "a")
	deepEqual(t, it.Value(), 1)

	end := m.Find("z")
	deepEqual(t, end.IsEnd(), true)
}

func TestFindRespectsTombstones(t *testing.T) {
	m1 := NewFromEntries(Entry[int, int]{1, 10})
	m2 := m1.Copy()
	m2.Erase(1)
	deepEqual(t, m2.Find(1).IsEnd(), true)
	deepEqual(t, m1.Find(1).IsEnd(), false)
}

func TestAllRangeOverFunc(t *testing.T) {
	m := NewFromEntries(Entry[int, int]{1, 10}, Entry[int, int]{2, 20})
	got := map[int]int{}
	for k, v := range m.All() {
		got[k] = v
	}
	deepEqual(t, len(got), 2)
	deepEqual(t, got[1], 10)
	deepEqual(t, got[2], 20)
}

func TestIteratorEqual(t *testing.T) {
	m := NewFromEntries(Entry[int, int]{1, 10})
	a := m.Find(1)
	b := m.Find(1)
	if !a.Equal(b) {
		t.Fatalf("two iterators positioned at the same key should be Equal")
	}
	if !m.End().Equal(m.End()) {
		t.Fatalf("two end iterators should be Equal")
	}
	if a.Equal(m.End()) {
		t.Fatalf("a live iterator should not Equal end")
	}
}
