package interval

import (
	"sort"
	"strings"
)

// Set is a canonical ordered sequence of pairwise-disjoint, non-fusable,
// non-empty intervals over one domain (spec §3.3). Set values are
// immutable after construction; every operation on a Set returns a fresh
// Set.
type Set[T any] struct {
	dom       *Domain[T]
	intervals []Interval[T]
}

// NewSet builds the canonical Set for an arbitrary bag of intervals over
// dom (spec §4.3):
//
//  1. drop empty intervals,
//  2. sort the rest by LowerCmp,
//  3. sweep left to right, fusing any interval whose OverlapCmp against the
//     running accumulator is 0.
//
// The result satisfies all four canonical-form invariants: no empties, lower
// sorted ascending, no two adjacent elements overlap or touch, mutually
// disjoint.
func NewSet[T any](dom Domain[T], ivs ...Interval[T]) Set[T] {
	kept := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			kept = append(kept, iv)
		}
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].LowerCmp(kept[j]) < 0 })

	out := make([]Interval[T], 0, len(kept))
	for _, iv := range kept {
		n := len(out)
		if n > 0 && out[n-1].OverlapCmp(iv) == 0 {
			fused, err := out[n-1].Fusion(iv)
			if err != nil {
				// OverlapCmp just returned 0, so Fusion's precondition holds.
				panic(err)
			}
			out[n-1] = fused
			continue
		}
		out = append(out, iv)
	}

	return Set[T]{dom: &dom, intervals: out}
}

// Intervals returns the canonical sequence backing s. The caller must not
// mutate the returned slice.
func (s Set[T]) Intervals() []Interval[T] {
	return s.intervals
}

// Len returns the number of intervals in the canonical sequence.
func (s Set[T]) Len() int {
	return len(s.intervals)
}

// IsEmpty reports whether s has no intervals.
func (s Set[T]) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Domain returns the domain descriptor s was built with.
func (s Set[T]) Domain() Domain[T] {
	if s.dom == nil {
		var zero Domain[T]
		return zero
	}
	return *s.dom
}

// domainOr picks a non-nil domain pointer from s, falling back to other —
// used by binary operations where one operand might be the Set zero value.
func (s Set[T]) domainOr(other Set[T]) *Domain[T] {
	if s.dom != nil {
		return s.dom
	}
	return other.dom
}

// String renders s as a union of bracket notations, e.g. "{[0, 1) u [2, 3]}",
// or "{}" for the empty set.
func (s Set[T]) String() string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, " u ") + "}"
}
