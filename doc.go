// Package interval provides typed intervals and interval sets over totally
// ordered domains, with exact algebraic operations (union, intersection,
// complement, difference) and a canonical normalized representation.
//
// An [Interval] is one contiguous range of a domain T, with a lower and an
// upper bound that are each either finite or unbounded. A [Set] is a
// canonical ordered sequence of pairwise-disjoint, non-fusable, non-empty
// intervals built from an arbitrary bag of intervals via [NewSet].
//
// Domains are described by a [Domain], a small descriptor carrying a total
// order comparator and, for discrete domains such as integers or dates, a
// successor/predecessor pair. Float, time and opaque-object domains are
// non-discrete: there is no "next value", so touching open endpoints never
// collapse into each other. This one flag is what makes (1, 2) empty over
// the integers but non-empty over the reals.
//
// Every type in this package is immutable after construction: [Interval]
// values are copied freely, [Set] operations always return a fresh [Set],
// and there is no shared mutable state to guard with a lock. Construction is
// O(n log n); union, intersection, complement and difference on two
// already-normalized sets are O(n+m).
//
// This package deliberately does not implement an interval tree or any
// sub-linear lookup structure. See the dispatch subpackage
// (github.com/gaissmai/ivalset/dispatch) for the runtime-value-to-domain
// dispatch that sits outside the algebra, and cmd/ivalsetctl for a small
// command line front end built on top of both.
//
// The design follows [Allen's Interval Algebra] for the overlap relation
// between two intervals, and "Fast Set Operations Using Treaps" by Guy E.
// Blelloch and Margaret Reid-Miller for the general shape of sort-then-sweep
// normalization, without the treap itself: [Set] stores its intervals as a
// plain sorted slice, not a balanced tree, since no operation here ever
// descends to a single point.
//
// [Allen's Interval Algebra]: https://www.ics.uci.edu/~alspaugh/cls/shr/allen.html
package interval
