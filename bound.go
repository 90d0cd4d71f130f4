package interval

// Bound is one endpoint of an [Interval]: either a finite value of the
// domain T, or the unbounded sentinel. The same representation stands for
// both -∞ and +∞; which one it means is disambiguated by whether it is used
// as a lower or an upper bound.
//
// Bound is a tagged sum, not a magic domain value: there is no sentinel
// T value that means "unbounded", so a [Domain] never has to reserve one.
type Bound[T any] struct {
	value     T
	unbounded bool
}

// Unbounded returns the unbounded bound for domain T.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{unbounded: true}
}

// Finite returns a finite bound at v.
func Finite[T any](v T) Bound[T] {
	return Bound[T]{value: v}
}

// IsUnbounded reports whether b is the unbounded sentinel.
func (b Bound[T]) IsUnbounded() bool {
	return b.unbounded
}

// Value returns the finite value of b and true, or the zero value and false
// if b is unbounded.
func (b Bound[T]) Value() (v T, ok bool) {
	if b.unbounded {
		return v, false
	}
	return b.value, true
}

// cmpLowerBounds compares two lower bounds per spec §4.1:
//
//   - unbounded lower is strictly less than any finite lower.
//   - if both are finite and equal, a closed lower is less than an open
//     lower (closed admits the boundary point itself, open does not).
func cmpLowerBounds[T any](cmp func(a, b T) int, aBound Bound[T], aClosed bool, bBound Bound[T], bClosed bool) int {
	switch {
	case aBound.unbounded && bBound.unbounded:
		return 0
	case aBound.unbounded:
		return -1
	case bBound.unbounded:
		return 1
	}

	if c := cmp(aBound.value, bBound.value); c != 0 {
		return c
	}

	switch {
	case aClosed == bClosed:
		return 0
	case aClosed:
		return -1
	default:
		return 1
	}
}

// cmpUpperBounds compares two upper bounds per spec §4.1:
//
//   - unbounded upper is strictly greater than any finite upper.
//   - if both are finite and equal, a closed upper is greater than an open
//     upper.
func cmpUpperBounds[T any](cmp func(a, b T) int, aBound Bound[T], aClosed bool, bBound Bound[T], bClosed bool) int {
	switch {
	case aBound.unbounded && bBound.unbounded:
		return 0
	case aBound.unbounded:
		return 1
	case bBound.unbounded:
		return -1
	}

	if c := cmp(aBound.value, bBound.value); c != 0 {
		return c
	}

	switch {
	case aClosed == bClosed:
		return 0
	case aClosed:
		return 1
	default:
		return -1
	}
}
