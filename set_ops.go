package interval

import "sort"

// Union returns the canonical set representing s ∪ other (spec §4.4):
// concatenate both canonical sequences and re-normalize.
func (s Set[T]) Union(other Set[T]) Set[T] {
	dom := s.domainOr(other)
	if dom == nil {
		return Set[T]{}
	}

	merged := make([]Interval[T], 0, len(s.intervals)+len(other.intervals))
	merged = append(merged, s.intervals...)
	merged = append(merged, other.intervals...)
	return NewSet(*dom, merged...)
}

// Intersect returns the canonical set representing s ∩ other: a two-pointer
// sweep over both canonical sequences (spec §4.4), emitting the pointwise
// intersection of every pair whose OverlapCmp is 0 and non-empty.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	dom := s.domainOr(other)
	if dom == nil {
		return Set[T]{}
	}

	a, b := s.intervals, other.intervals
	out := make([]Interval[T], 0, min(len(a), len(b)))

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i].OverlapCmp(b[j]) == 0 {
			piece := pointwiseIntersect(a[i], b[j])
			if !piece.Empty() {
				out = append(out, piece)
			}
			if a[i].UpperCmp(b[j]) < 0 {
				i++
			} else {
				j++
			}
			continue
		}
		if a[i].UpperCmp(b[j]) < 0 {
			i++
		} else {
			j++
		}
	}

	return NewSet(*dom, out...)
}

// pointwiseIntersect returns the intersection of two single intervals:
// lower is the LowerCmp-larger lower, upper is the UpperCmp-smaller upper.
func pointwiseIntersect[T any](a, b Interval[T]) Interval[T] {
	out := a
	if a.LowerCmp(b) < 0 {
		out.lower, out.lowerClosed = b.lower, b.lowerClosed
	}
	if a.UpperCmp(b) > 0 {
		out.upper, out.upperClosed = b.upper, b.upperClosed
	}
	return out
}

// Complement returns ~s: the universe (-∞, +∞) minus s (spec §4.4). If s is
// empty, the result is the single interval spanning the whole domain.
// Otherwise the gaps before, between and after s's intervals are emitted
// with inverted closedness on the adjoining sides; any gap that collapses
// to empty (e.g. no integer between two adjacent discrete intervals) is
// dropped automatically by NewSet's empty-filtering. The zero-value Set
// carries no domain, so its complement is again the zero-value Set.
func (s Set[T]) Complement() Set[T] {
	if s.dom == nil {
		return Set[T]{}
	}
	dom := *s.dom

	if len(s.intervals) == 0 {
		return NewSet(dom, Universe(dom))
	}

	gaps := make([]Interval[T], 0, len(s.intervals)+1)

	first := s.intervals[0]
	if first.LowerBounded() {
		gaps = append(gaps, New(dom, Unbounded[T](), first.lower, false, !first.lowerClosed))
	}

	for i := 0; i+1 < len(s.intervals); i++ {
		left, right := s.intervals[i], s.intervals[i+1]
		gaps = append(gaps, New(dom, left.upper, right.lower, !left.upperClosed, !right.lowerClosed))
	}

	last := s.intervals[len(s.intervals)-1]
	if last.UpperBounded() {
		gaps = append(gaps, New(dom, last.upper, Unbounded[T](), !last.upperClosed, false))
	}

	return NewSet(dom, gaps...)
}

// Minus returns s − other, equivalent to s ∩ ~other (spec §4.4).
func (s Set[T]) Minus(other Set[T]) Set[T] {
	return s.Intersect(other.Complement())
}

// Contains reports whether x is a member of any interval in s, via binary
// search on lower bounds (spec §4.4).
func (s Set[T]) Contains(x T) bool {
	if s.dom == nil {
		return false
	}
	dom := *s.dom

	probe := New(dom, Finite(x), Finite(x), true, true)
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].LowerCmp(probe) > 0
	})
	if idx == 0 {
		return false
	}
	return s.intervals[idx-1].Contains(x)
}

// Equal reports whether s and other have element-wise equal canonical
// sequences.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s.intervals) != len(other.intervals) {
		return false
	}
	for i := range s.intervals {
		if !s.intervals[i].Equal(other.intervals[i]) {
			return false
		}
	}
	return true
}

// Less defines a total, deterministic ordering over sets by lexicographic
// comparison of their canonical sequences. This is for tie-breaks and
// sorting collections of sets, never a subset test.
func (s Set[T]) Less(other Set[T]) bool {
	n := len(s.intervals)
	if len(other.intervals) < n {
		n = len(other.intervals)
	}
	for i := 0; i < n; i++ {
		if s.intervals[i].Less(other.intervals[i]) {
			return true
		}
		if other.intervals[i].Less(s.intervals[i]) {
			return false
		}
	}
	return len(s.intervals) < len(other.intervals)
}
