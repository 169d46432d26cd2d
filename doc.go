/*
Package lazymap implements a persistent, copy-on-write associative
container: a generic mapping from keys to values that supports cheap
value-semantic copying by sharing structure with previous versions,
while preserving ordinary mutable-map semantics for each logical
instance.

We implement:

1. Fragments, the immutable-once-shared nodes of the copy-on-write
chain: a local key/value table, a tombstone set recording deletions
relative to an ancestor, an optional parent fragment, and a cached
logical size.

2. Map, the user-facing handle. Holds a reference-counted pointer to
its current head fragment and performs copy-on-write by allocating a
new head whenever the existing one is shared.

3. Iterator, a forward cursor over a Map's logical view at the time of
its construction, suppressing keys shadowed or tombstoned by a nearer
fragment.

# Technical Details

**Reference counting.** Go has no destructors, so Map does not get a
free ride the way a C++ shared_ptr does. Map.Copy is the only
sanctioned way to produce a second handle over the same head fragment;
it atomically increments the head's reference count. Plain Go
assignment (m2 := m1) copies the struct's pointer field without
touching that count and must not be used — the two resulting values
would alias the same fragment while each believing itself the unique
owner, corrupting isolation the first time either one mutates.
Map.Release decrements the count for handles whose caller wants to
free up sharing promptly; skipping it is always safe; it simply keeps
the count conservatively high, forcing copy-on-write slightly more
often than strictly necessary.

**Fragment chain.** Every read walks the chain head to root looking
for a local binding or a tombstone. Every write lands on the head
fragment only, after prepare-for-edit has established that the head is
uniquely owned. Detach folds the whole chain into the head and severs
the parent link, trading an O(n) pass for O(1) reads on the result.

**Move semantics.** Go values are not destructively movable, so Move
models "moving out" a uniquely-owned local value by swapping it for the
zero value of V in place, leaving the key visible with a moved-from
value until the caller reassigns it. MoveOnly reports the non-unique
case with a boolean rather than paying for a copy.
*/
package lazymap
