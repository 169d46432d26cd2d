package lazymap

import (
	"reflect"
	"sort"
	"testing"
)

func deepEqual[T any](t testing.TB, a, e T) {
	t.Helper()
	if !equalAny(a, e) {
		t.Errorf("** got %v, wanted %v", a, e)
	}
}

// equalAny compares deeply, so it handles both the primitive
// key/value types and the key slices these tests compare.
func equalAny[T any](a, e T) bool {
	return reflect.DeepEqual(a, e)
}

func isempty[T any](t testing.TB, a []T) {
	t.Helper()
	if len(a) > 0 {
		t.Errorf("** got %v, wanted empty slice", a)
	}
}

func keysOf[K comparable, V any](m Map[K, V]) []K {
	var ks []K
	for it := m.Begin(); !it.IsEnd(); it.Next() {
		ks = append(ks, it.Key())
	}
	return ks
}

func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	sort.Ints(out)
	return out
}
