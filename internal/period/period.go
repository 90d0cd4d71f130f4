// Package period provides Quarter, a small discrete domain value used by
// the interval package's examples and tests as a stand-in for an
// opaque-object domain that still has successor/predecessor: a fiscal
// quarter, identified by year and quarter number.
//
// This is the teacher's own period.Ival test fixture, repurposed: the
// original Ival was a pair of ints standing in for a whole interval (used
// to key a lookup tree); Quarter is a single domain value with its own
// order and discreteness, the thing an interval.Domain is built around.
package period

import "fmt"

// Quarter identifies one fiscal quarter, e.g. 2024Q3.
type Quarter struct {
	Year int
	Q    int // 1..4
}

// Compare orders quarters chronologically.
func (p Quarter) Compare(q Quarter) int {
	if p.Year != q.Year {
		return cmp(p.Year, q.Year)
	}
	return cmp(p.Q, q.Q)
}

// Next returns the quarter immediately after p.
func (p Quarter) Next() Quarter {
	if p.Q == 4 {
		return Quarter{Year: p.Year + 1, Q: 1}
	}
	return Quarter{Year: p.Year, Q: p.Q + 1}
}

// Prev returns the quarter immediately before p.
func (p Quarter) Prev() Quarter {
	if p.Q == 1 {
		return Quarter{Year: p.Year - 1, Q: 4}
	}
	return Quarter{Year: p.Year, Q: p.Q - 1}
}

// String implements fmt.Stringer, not required by interval.Domain.
func (p Quarter) String() string {
	return fmt.Sprintf("%dQ%d", p.Year, p.Q)
}

// little helper, compare two ints
func cmp(a, b int) int {
	switch {
	case a == b:
		return 0
	case a < b:
		return -1
	}
	return 1
}
