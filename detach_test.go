package lazymap

import "testing"

func TestDetach(t *testing.T) {
	// S3
	m1 := NewFromEntries(Entry[int, int]{1, 10}, Entry[int, int]{2, 20}, Entry[int, int]{3, 30})
	m2 := m1.Copy()
	m2.Insert(4, 40)
	m3 := m2.Copy()
	m3.Insert(5, 50)
	m3.Erase(3)

	deepEqual(t, sortedInts(keysOf(m3)), []int{1, 2, 4, 5})

	if !m2.Detach() {
		t.Fatalf("m2.Detach() = false, wanted true")
	}
	if m2.Detach() {
		t.Fatalf("second m2.Detach() = true, wanted false")
	}
	deepEqual(t, m2.IsDetached(), true)

	if !m3.Detach() {
		t.Fatalf("m3.Detach() = false, wanted true")
	}

	m4 := m3.Copy()
	m4.Insert(6, 60)
	if !m4.Detach() {
		t.Fatalf("m4.Detach() = false, wanted true")
	}
}

func TestDetachPreservesLogicalView(t *testing.T) {
	// P4
	m1 := NewFromEntries(Entry[int, int]{1, 10}, Entry[int, int]{2, 20})
	m2 := m1.Copy()
	m2.Insert(3, 30)
	m2.Erase(1)

	before := sortedInts(keysOf(m2))
	sizeBefore := m2.Size()

	if !m2.Detach() {
		t.Fatalf("Detach() = false, wanted true")
	}

	deepEqual(t, sortedInts(keysOf(m2)), before)
	deepEqual(t, m2.Size(), sizeBefore)
	deepEqual(t, m2.Contains(1), false)
	v, _ := m2.At(3)
	deepEqual(t, v, 30)
}

func TestDetachOnAlreadyDetachedReturnsFalse(t *testing.T) {
	m := New[int, int]()
	if m.Detach() {
		t.Fatalf("Detach() on a fresh map = true, wanted false")
	}
}
