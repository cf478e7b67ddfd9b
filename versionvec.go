package versionvec

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Counter is the set of integer types usable as a per-replica counter.
// Counters are non-negative by convention: operations here only ever
// increase them.
type Counter interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Entry is a single (replica ID, counter) pair.
type Entry[I cmp.Ordered, T Counter] struct {
	ID      I
	Counter T
}

// Vector is a version vector: a mapping from replica ID to a monotonically
// non-decreasing counter, stored as a sparse sequence of entries sorted by
// ID with no duplicates. An ID absent from the vector is equivalent to that
// ID having counter zero, for both comparison and merge.
// Thread-safe access should be handled by the caller; independent copies
// produced by Copy or Merged are safe to use concurrently.
type Vector[I cmp.Ordered, T Counter] struct {
	entries []Entry[I, T]
}

// New creates a new empty version vector.
func New[I cmp.Ordered, T Counter]() *Vector[I, T] {
	return &Vector[I, T]{}
}

// FromEntries builds a vector from an unordered list of (ID, counter)
// pairs. The input is sorted by ID; if an ID appears more than once, the
// last occurrence in the input wins.
func FromEntries[I cmp.Ordered, T Counter](entries []Entry[I, T]) *Vector[I, T] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[I, T]) int {
		return cmp.Compare(a.ID, b.ID)
	})

	// The sort is stable, so within a run of equal IDs the last element is
	// the latest occurrence in the input. Keep only that one.
	deduped := sorted[:0]
	for i, e := range sorted {
		if i+1 < len(sorted) && sorted[i+1].ID == e.ID {
			continue
		}
		deduped = append(deduped, e)
	}
	return &Vector[I, T]{entries: deduped}
}

// search locates id in the sorted entries, returning its index if present
// or the index where it would be inserted.
func (v *Vector[I, T]) search(id I) (int, bool) {
	return slices.BinarySearchFunc(v.entries, id, func(e Entry[I, T], id I) int {
		return cmp.Compare(e.ID, id)
	})
}

// Get returns the counter for the given ID and whether it is present.
// A missing ID reports a zero counter; absence is a normal outcome,
// not an error.
func (v *Vector[I, T]) Get(id I) (T, bool) {
	if i, ok := v.search(id); ok {
		return v.entries[i].Counter, true
	}
	var zero T
	return zero, false
}

// Bump increments the counter for the given ID by one. If the ID is not
// present, it is inserted at its sorted position with counter one.
// Overflow follows Go semantics for T and wraps around.
func (v *Vector[I, T]) Bump(id I) {
	i, found := v.search(id)
	if found {
		v.entries[i].Counter++
		return
	}
	v.entries = slices.Insert(v.entries, i, Entry[I, T]{ID: id, Counter: 1})
}

// Set sets the counter for the given ID, inserting it at its sorted
// position if missing.
func (v *Vector[I, T]) Set(id I, counter T) {
	i, found := v.search(id)
	if found {
		v.entries[i].Counter = counter
		return
	}
	v.entries = slices.Insert(v.entries, i, Entry[I, T]{ID: id, Counter: counter})
}

// Merge merges another vector into this one, taking the maximum counter
// for every ID present in either vector. Merge is commutative,
// associative, and idempotent.
//
// Both entry sequences are walked with two cursors: equal IDs keep the
// larger counter, IDs present only here are already maximal, and IDs
// present only in other are inserted at the cursor position, so the
// result stays sorted throughout.
func (v *Vector[I, T]) Merge(other *Vector[I, T]) {
	vi, oi := 0, 0
	for oi < len(other.entries) {
		if vi >= len(v.entries) {
			// Everything left in other is missing here.
			v.entries = append(v.entries, other.entries[oi:]...)
			return
		}

		left, right := v.entries[vi], other.entries[oi]
		switch {
		case left.ID == right.ID:
			v.entries[vi].Counter = max(left.Counter, right.Counter)
			vi++
			oi++
		case left.ID < right.ID:
			vi++
		default:
			v.entries = slices.Insert(v.entries, vi, right)
			vi++
			oi++
		}
	}
}

// Merged returns a new vector that is the merge of this vector and other,
// leaving both inputs unmodified.
func (v *Vector[I, T]) Merged(other *Vector[I, T]) *Vector[I, T] {
	merged := v.Copy()
	merged.Merge(other)
	return merged
}

// Compare compares two vectors and returns their causal relationship.
// Returns:
//   - Equal: every counter matches (missing IDs count as zero)
//   - Less: this vector happened before other (all counters <=, at least one <)
//   - Greater: this vector happened after other (all counters >=, at least one >)
//   - Concurrent: neither dominates (some counters greater, some less)
//
// Both entry sequences are walked with two cursors and each component
// feeds evidence into an accumulator; once the accumulator reaches
// Concurrent no further component can change it, so the walk stops there.
func (v *Vector[I, T]) Compare(other *Vector[I, T]) Ordering {
	result := Equal
	vi, oi := 0, 0

	for {
		if vi >= len(v.entries) {
			// Other side has residual entries; any non-zero counter among
			// them is an update this vector has not seen.
			if anyNonZero(other.entries[oi:]) {
				result.absorb(Less)
			}
			return result
		}
		if oi >= len(other.entries) {
			if anyNonZero(v.entries[vi:]) {
				result.absorb(Greater)
			}
			return result
		}

		left, right := v.entries[vi], other.entries[oi]
		switch {
		case left.ID == right.ID:
			result.absorb(orderingOf(cmp.Compare(left.Counter, right.Counter)))
			vi++
			oi++
		case left.ID < right.ID:
			// ID missing on the other side, i.e. zero there.
			if left.Counter != 0 {
				result.absorb(Greater)
			}
			vi++
		default:
			if right.Counter != 0 {
				result.absorb(Less)
			}
			oi++
		}

		if result == Concurrent {
			return Concurrent
		}
	}
}

// Equal reports whether the two vectors carry identical causal history.
// Explicit zero counters and missing IDs are interchangeable, so a vector
// of all-zero entries equals the empty vector.
func (v *Vector[I, T]) Equal(other *Vector[I, T]) bool {
	return v.Compare(other) == Equal
}

// Dominates returns true if this vector dominates (happened after) the other.
func (v *Vector[I, T]) Dominates(other *Vector[I, T]) bool {
	return v.Compare(other) == Greater
}

// IsConcurrent returns true if this vector is concurrent with the other.
func (v *Vector[I, T]) IsConcurrent(other *Vector[I, T]) bool {
	return v.Compare(other) == Concurrent
}

// IsZero returns true if the vector carries no causal history, i.e. it is
// empty or holds only zero counters.
func (v *Vector[I, T]) IsZero() bool {
	return !anyNonZero(v.entries)
}

// Copy creates a deep copy of the vector.
func (v *Vector[I, T]) Copy() *Vector[I, T] {
	return &Vector[I, T]{entries: slices.Clone(v.entries)}
}

// Entries returns a copy of the vector's entries in ascending ID order,
// for callers that need to enumerate or serialize the vector.
func (v *Vector[I, T]) Entries() []Entry[I, T] {
	return slices.Clone(v.entries)
}

// Len returns the number of entries stored in the vector.
func (v *Vector[I, T]) Len() int {
	return len(v.entries)
}

// String returns a string representation of the vector in ID order.
func (v *Vector[I, T]) String() string {
	if len(v.entries) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		parts = append(parts, fmt.Sprintf("%v:%d", e.ID, e.Counter))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// orderingOf converts a cmp.Compare result into per-component evidence.
func orderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

func anyNonZero[I cmp.Ordered, T Counter](entries []Entry[I, T]) bool {
	for _, e := range entries {
		if e.Counter != 0 {
			return true
		}
	}
	return false
}
