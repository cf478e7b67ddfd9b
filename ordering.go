package versionvec

import "fmt"

// Ordering represents the causal relationship between two version vectors.
type Ordering int

const (
	// Equal indicates the vectors carry identical causal history.
	Equal Ordering = iota
	// Less indicates this vector happened before the other (the other dominates).
	Less
	// Greater indicates this vector happened after the other (it dominates).
	Greater
	// Concurrent indicates the vectors diverged with no causal order
	// (at least one counter is greater on each side).
	Concurrent
)

// String returns a string representation of the ordering.
func (o Ordering) String() string {
	switch o {
	case Equal:
		return "Equal"
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	case Concurrent:
		return "Concurrent"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// absorb folds per-component evidence into the accumulated ordering.
// Equal yields to the first Less or Greater seen; evidence opposing the
// accumulated direction makes the result Concurrent, and Concurrent
// absorbs everything after it.
func (o *Ordering) absorb(evidence Ordering) {
	switch {
	case evidence == Equal || evidence == *o || *o == Concurrent:
		// no new information
	case *o == Equal:
		*o = evidence
	default:
		*o = Concurrent
	}
}
