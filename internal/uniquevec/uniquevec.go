package uniquevec

import (
	"hash/maphash"
	"iter"
	"slices"
)

// UniqueVector is an ordered set optimized for building dependency lists:
// values are appended but never randomly inserted or removed (short of a
// full Clear), the first occurrence of a value fixes its position, and
// duplicates are dropped.
//
// The index maps a value's hash to element positions rather than to element
// addresses, so it stays valid as the backing slice grows and reallocates.
// A candidate's hash is computed once per Append and reused for both the
// membership probe and the index insertion.
//
// The zero value is ready to use. A UniqueVector is not internally
// synchronized: concurrent mutation is undefined, while concurrent read-only
// access to an instance that is not being mutated is safe.
type UniqueVector[T comparable] struct {
	seed  maphash.Seed
	items []T
	index map[uint64][]int // hash -> positions of items with that hash
}

// New returns an empty UniqueVector. Equivalent to new(UniqueVector[T]).
func New[T comparable]() *UniqueVector[T] {
	return &UniqueVector[T]{}
}

func (v *UniqueVector[T]) lazyInit() {
	if v.index == nil {
		v.seed = maphash.MakeSeed()
		v.index = make(map[uint64][]int)
	}
}

// Append adds item unless an equal element is already present. It reports
// whether the collection was modified: true on the first occurrence of a
// value, false on every subsequent duplicate.
func (v *UniqueVector[T]) Append(item T) bool {
	v.lazyInit()
	h := maphash.Comparable(v.seed, item)
	for _, pos := range v.index[h] {
		if v.items[pos] == item {
			return false
		}
	}
	v.items = append(v.items, item)
	v.index[h] = append(v.index[h], len(v.items)-1)
	return true
}

// AppendSlice appends each element of items in order. The net effect equals
// repeated single Appends.
func (v *UniqueVector[T]) AppendSlice(items []T) {
	for _, item := range items {
		v.Append(item)
	}
}

// AppendSeq appends each element produced by seq in order.
func (v *UniqueVector[T]) AppendSeq(seq iter.Seq[T]) {
	for item := range seq {
		v.Append(item)
	}
}

// IndexOf returns the insertion-order position of item, or false if no equal
// element is present. Positions are stable: appending further values never
// reindexes existing elements.
func (v *UniqueVector[T]) IndexOf(item T) (int, bool) {
	if v.index == nil {
		return 0, false
	}
	h := maphash.Comparable(v.seed, item)
	for _, pos := range v.index[h] {
		if v.items[pos] == item {
			return pos, true
		}
	}
	return 0, false
}

// Contains reports whether an equal element is present.
func (v *UniqueVector[T]) Contains(item T) bool {
	_, ok := v.IndexOf(item)
	return ok
}

// Len returns the number of elements.
func (v *UniqueVector[T]) Len() int { return len(v.items) }

// Empty reports whether the collection has no elements.
func (v *UniqueVector[T]) Empty() bool { return len(v.items) == 0 }

// At returns the element at position i in insertion order.
func (v *UniqueVector[T]) At(i int) T { return v.items[i] }

// Slice returns the elements in insertion order. The returned slice is a
// view into the collection's storage and must not be modified.
func (v *UniqueVector[T]) Slice() []T { return v.items }

// All returns an iterator over (position, element) pairs in insertion order.
func (v *UniqueVector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Grow reserves capacity for at least n additional elements.
func (v *UniqueVector[T]) Grow(n int) {
	v.items = slices.Grow(v.items, n)
}

// Clear empties the sequence and the index together. Capacity is retained;
// a cleared UniqueVector behaves like a freshly constructed one.
func (v *UniqueVector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
	clear(v.index)
}
