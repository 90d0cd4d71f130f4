package interval

import "fmt"

// Op is a six-way comparison operation code for [Interval.Compare], bit
// compatible with spec §4.2: 0=<, 1=<=, 2===, 3=!=, 4=>, 5=>=.
type Op uint8

const (
	OpLess Op = iota
	OpLessOrEqual
	OpEqual
	OpNotEqual
	OpGreater
	OpGreaterOrEqual
)

// Interval is one contiguous range of a domain T: a lower and an upper
// bound, each finite or unbounded, and a closed/open flag per finite side.
// Interval values are immutable and safe to copy and share across threads.
type Interval[T any] struct {
	dom *Domain[T]

	lower, upper             Bound[T]
	lowerClosed, upperClosed bool
}

// New builds an Interval over dom with the given bounds. An unbounded bound
// is always open, regardless of the requested closedness — closedness is
// only meaningful on a finite side (spec §3.2).
func New[T any](dom Domain[T], lower, upper Bound[T], lowerClosed, upperClosed bool) Interval[T] {
	if lower.IsUnbounded() {
		lowerClosed = false
	}
	if upper.IsUnbounded() {
		upperClosed = false
	}
	return Interval[T]{dom: &dom, lower: lower, upper: upper, lowerClosed: lowerClosed, upperClosed: upperClosed}
}

// Closed returns the closed interval [lower, upper].
func Closed[T any](dom Domain[T], lower, upper T) Interval[T] {
	return New(dom, Finite(lower), Finite(upper), true, true)
}

// Open returns the open interval (lower, upper).
func Open[T any](dom Domain[T], lower, upper T) Interval[T] {
	return New(dom, Finite(lower), Finite(upper), false, false)
}

// LowerClosed returns the half-open interval [lower, upper).
func LowerClosed[T any](dom Domain[T], lower, upper T) Interval[T] {
	return New(dom, Finite(lower), Finite(upper), true, false)
}

// UpperClosed returns the half-open interval (lower, upper].
func UpperClosed[T any](dom Domain[T], lower, upper T) Interval[T] {
	return New(dom, Finite(lower), Finite(upper), false, true)
}

// AtLeast returns the lower-bounded, upper-unbounded interval [lower, +∞).
func AtLeast[T any](dom Domain[T], lower T) Interval[T] {
	return New(dom, Finite(lower), Unbounded[T](), true, false)
}

// MoreThan returns the lower-bounded, upper-unbounded interval (lower, +∞).
func MoreThan[T any](dom Domain[T], lower T) Interval[T] {
	return New(dom, Finite(lower), Unbounded[T](), false, false)
}

// AtMost returns the lower-unbounded, upper-bounded interval (-∞, upper].
func AtMost[T any](dom Domain[T], upper T) Interval[T] {
	return New(dom, Unbounded[T](), Finite(upper), false, true)
}

// LessThan returns the lower-unbounded, upper-bounded interval (-∞, upper).
func LessThan[T any](dom Domain[T], upper T) Interval[T] {
	return New(dom, Unbounded[T](), Finite(upper), false, false)
}

// Universe returns the unbounded interval (-∞, +∞) over dom.
func Universe[T any](dom Domain[T]) Interval[T] {
	return New(dom, Unbounded[T](), Unbounded[T](), false, false)
}

// LowerBound, UpperBound return the interval's raw bounds.
func (iv Interval[T]) LowerBound() Bound[T] { return iv.lower }
func (iv Interval[T]) UpperBound() Bound[T] { return iv.upper }

// LowerClosed, UpperClosed report the closedness of each finite side. Both
// are false whenever the corresponding bound is unbounded.
func (iv Interval[T]) LowerClosed() bool { return iv.lowerClosed }
func (iv Interval[T]) UpperClosed() bool { return iv.upperClosed }

// LowerBounded, UpperBounded report whether each side is finite.
func (iv Interval[T]) LowerBounded() bool { return !iv.lower.IsUnbounded() }
func (iv Interval[T]) UpperBounded() bool { return !iv.upper.IsUnbounded() }

// Domain returns the domain descriptor this interval was built with.
func (iv Interval[T]) Domain() Domain[T] { return *iv.dom }

// isDiscreteEmpty tests whether a discrete domain's open/half-open window
// between two finite bounds contains no domain point, by collapsing each
// open endpoint to its nearest included neighbor via Succ/Pred and then
// comparing. Called by Empty, and through Empty by the Set normalization
// sweep (dropping empties) and by strictlyBefore (testing the gap between
// two discrete intervals).
func (iv Interval[T]) isDiscreteEmpty() bool {
	dom := iv.dom
	lv, lok := iv.lower.Value()
	uv, uok := iv.upper.Value()
	if !lok || !uok {
		return false // an unbounded interval is never empty
	}

	if !iv.lowerClosed {
		lv = dom.Succ(lv)
	}
	if !iv.upperClosed {
		uv = dom.Pred(uv)
	}
	return dom.Cmp(lv, uv) > 0
}

// Empty reports whether the interval denotes the empty set (spec §4.2).
//
// On a non-discrete domain, an interval is empty iff lower > upper, or
// lower == upper with either side open — [a,a] is non-empty, (a,a) is.
//
// On a discrete domain, an interval can additionally be empty when the
// open/half-open window contains no domain point, e.g. (1, 2) over the
// integers, or (Dec 31, Jan 1) over dates.
func (iv Interval[T]) Empty() bool {
	lv, lok := iv.lower.Value()
	uv, uok := iv.upper.Value()
	if !lok || !uok {
		return false
	}

	c := iv.dom.Cmp(lv, uv)
	switch {
	case c > 0:
		return true
	case c == 0:
		return !(iv.lowerClosed && iv.upperClosed)
	}

	if iv.dom.Discrete && (!iv.lowerClosed || !iv.upperClosed) {
		return iv.isDiscreteEmpty()
	}
	return false
}

// Contains reports whether x is a member of the interval: L(x) && U(x) per
// spec §3.2.
func (iv Interval[T]) Contains(x T) bool {
	if lv, ok := iv.lower.Value(); ok {
		c := iv.dom.Cmp(lv, x)
		if iv.lowerClosed {
			if c > 0 {
				return false
			}
		} else if c >= 0 {
			return false
		}
	}
	if uv, ok := iv.upper.Value(); ok {
		c := iv.dom.Cmp(uv, x)
		if iv.upperClosed {
			if c < 0 {
				return false
			}
		} else if c <= 0 {
			return false
		}
	}
	return true
}

// LowerCmp compares the lower bounds of iv and other (spec §4.1).
func (iv Interval[T]) LowerCmp(other Interval[T]) int {
	return cmpLowerBounds(iv.dom.Cmp, iv.lower, iv.lowerClosed, other.lower, other.lowerClosed)
}

// UpperCmp compares the upper bounds of iv and other (spec §4.1).
func (iv Interval[T]) UpperCmp(other Interval[T]) int {
	return cmpUpperBounds(iv.dom.Cmp, iv.upper, iv.upperClosed, other.upper, other.upperClosed)
}

// OverlapCmp compares iv and other by position, treating touching or
// mergeable intervals as equal (spec §4.2):
//
//	-1  iv lies entirely, strictly before other, with a gap between them
//	+1  iv lies entirely, strictly after other, with a gap between them
//	 0  iv and other share at least one point, or touch without a gap
//
// On a discrete domain, adjacent intervals with no domain point strictly
// between them (e.g. [0,1] and [2,3] over the integers, but not [0,1] and
// [3,4], which leave 2 out of both) are considered touching,
// because fusing them changes no observable membership. This mirrors
// Allen's Interval Algebra "meets"/"overlaps"/"during" relations collapsing
// to equality for the purposes of this algebra: anything that isn't
// strictly-before or strictly-after is OverlapCmp == 0.
func (iv Interval[T]) OverlapCmp(other Interval[T]) int {
	// iv strictly before other: iv's upper below other's lower, with a real
	// gap (no domain point can close it).
	if iv.strictlyBefore(other) {
		return -1
	}
	if other.strictlyBefore(iv) {
		return 1
	}
	return 0
}

// strictlyBefore reports whether iv ends, with a genuine gap, before other
// begins: no domain point is a member of iv and other both, and (on a
// discrete domain) no domain point lies in the gap between them either, so
// fusing them would not be information preserving.
//
// On a discrete domain the gap is the interval from iv's upper to other's
// lower bound with inverted closedness, and iv is strictly before other iff
// that gap is non-empty: (0,5] and (5,10] over the integers touch, [0,5)
// and (5,10] do not. On a continuous domain a coincident boundary (iv's
// upper value equals other's lower value) is only a non-gap if both sides
// are closed there — they then share that one point outright; a coincident
// but mismatched-closedness boundary is a genuine separation.
func (iv Interval[T]) strictlyBefore(other Interval[T]) bool {
	uv, uok := iv.upper.Value()
	lv, lok := other.lower.Value()
	if !uok || !lok {
		return false // either side unbounded toward the other: no gap possible
	}

	if iv.dom.Discrete {
		gap := Interval[T]{dom: iv.dom, lower: iv.upper, upper: other.lower, lowerClosed: !iv.upperClosed, upperClosed: !other.lowerClosed}
		return !gap.Empty()
	}

	c := iv.dom.Cmp(uv, lv)
	switch {
	case c < 0:
		return true
	case c == 0:
		// same point: they share it only if both sides are closed there;
		// otherwise no domain point belongs to both, which on a continuous
		// domain is a genuine separation.
		return !(iv.upperClosed && other.lowerClosed)
	default:
		return false
	}
}

// Fusion merges iv and other into the smallest interval covering both.
// Precondition: OverlapCmp(iv, other) == 0. Violating the precondition
// returns an [InvariantViolationError].
func (iv Interval[T]) Fusion(other Interval[T]) (Interval[T], error) {
	if iv.OverlapCmp(other) != 0 {
		var zero Interval[T]
		return zero, invariantViolation("Fusion", "intervals neither overlap nor touch")
	}

	out := iv
	if iv.LowerCmp(other) > 0 {
		out.lower, out.lowerClosed = other.lower, other.lowerClosed
	}
	if iv.UpperCmp(other) < 0 {
		out.upper, out.upperClosed = other.upper, other.upperClosed
	}
	return out, nil
}

// Compare implements the six-way total order from spec §4.2: lexicographic
// on (lower_bound, !lower_closed, upper_bound, upper_closed). This is a
// deterministic tie-break / total order, not a subset test — op must be one
// of the [Op] constants.
func (iv Interval[T]) Compare(other Interval[T], op Op) bool {
	sign := iv.richCmp(other)
	switch op {
	case OpLess:
		return sign < 0
	case OpLessOrEqual:
		return sign <= 0
	case OpEqual:
		return sign == 0
	case OpNotEqual:
		return sign != 0
	case OpGreater:
		return sign > 0
	case OpGreaterOrEqual:
		return sign >= 0
	default:
		panic(fmt.Sprintf("interval: invalid Op %d", op))
	}
}

func (iv Interval[T]) richCmp(other Interval[T]) int {
	if c := iv.LowerCmp(other); c != 0 {
		return c
	}
	return iv.UpperCmp(other)
}

// Less, LessOrEqual, Equal, NotEqual, Greater, GreaterOrEqual are named
// convenience wrappers around Compare, for call sites that don't want to
// spell out an [Op].
func (iv Interval[T]) Less(other Interval[T]) bool           { return iv.Compare(other, OpLess) }
func (iv Interval[T]) LessOrEqual(other Interval[T]) bool    { return iv.Compare(other, OpLessOrEqual) }
func (iv Interval[T]) Equal(other Interval[T]) bool          { return iv.Compare(other, OpEqual) }
func (iv Interval[T]) NotEqual(other Interval[T]) bool       { return iv.Compare(other, OpNotEqual) }
func (iv Interval[T]) Greater(other Interval[T]) bool        { return iv.Compare(other, OpGreater) }
func (iv Interval[T]) GreaterOrEqual(other Interval[T]) bool { return iv.Compare(other, OpGreaterOrEqual) }

// String renders the interval in bracket notation, e.g. "[0, 1)",
// "(-∞, 5]", "(-∞, +∞)".
func (iv Interval[T]) String() string {
	lb := "("
	if iv.lowerClosed {
		lb = "["
	}
	ub := ")"
	if iv.upperClosed {
		ub = "]"
	}

	lv := "-∞"
	if v, ok := iv.lower.Value(); ok {
		lv = fmt.Sprintf("%v", v)
	}
	uv := "+∞"
	if v, ok := iv.upper.Value(); ok {
		uv = fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("%s%s, %s%s", lb, lv, uv, ub)
}
