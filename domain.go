package interval

import "time"

// Domain describes the element type T an [Interval]/[Set] ranges over: a
// total order comparator, and, for discrete domains, a successor and
// predecessor function (spec §3.4).
//
// Discrete is what lets (1, 2) be recognized as empty over the integers:
// the open window between 1 and 2 contains no integer, which [Interval.Empty]
// and the normalization sweep in [NewSet] both test for via Succ/Pred,
// never by special-casing a particular domain. Float, time-of-day and
// opaque-object domains leave Discrete false and Succ/Pred nil; no code
// path in this package dereferences Succ/Pred unless Discrete is true, so a
// non-discrete domain can never reach the discrete-only logic (the
// "compile-time, or equivalently checked" guarantee from the design notes).
type Domain[T any] struct {
	// Name is a human-readable label for the domain, e.g. "int" or "date".
	Name string

	// Cmp is the total order comparator: negative if a < b, zero if a == b,
	// positive if a > b.
	Cmp func(a, b T) int

	// Discrete reports whether Succ/Pred are defined for every value.
	Discrete bool

	// Succ returns the next domain value after v. Only called when Discrete
	// is true.
	Succ func(v T) T

	// Pred returns the domain value immediately before v. Only called when
	// Discrete is true.
	Pred func(v T) T
}

func cmpOrdered[T int | int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Ints returns the domain of int values: discrete, with Succ(x) = x+1 and
// Pred(x) = x-1.
func Ints() Domain[int] {
	return Domain[int]{
		Name:     "int",
		Cmp:      cmpOrdered[int],
		Discrete: true,
		Succ:     func(v int) int { return v + 1 },
		Pred:     func(v int) int { return v - 1 },
	}
}

// Int64s returns the domain of int64 values: discrete, with Succ(x) = x+1
// and Pred(x) = x-1.
func Int64s() Domain[int64] {
	return Domain[int64]{
		Name:     "int64",
		Cmp:      cmpOrdered[int64],
		Discrete: true,
		Succ:     func(v int64) int64 { return v + 1 },
		Pred:     func(v int64) int64 { return v - 1 },
	}
}

// Float64s returns the domain of float64 values: non-discrete, there is no
// well-defined "next" float.
func Float64s() Domain[float64] {
	return Domain[float64]{
		Name: "float64",
		Cmp:  cmpOrdered[float64],
	}
}

// Dates returns the domain of calendar days, represented as time.Time:
// discrete, with Succ/Pred stepping by exactly one day and comparison
// truncated to day granularity so that e.g. 2012-01-01T08:00 and
// 2012-01-01T20:00 compare equal. Use [Times] instead for sub-day precision.
func Dates() Domain[time.Time] {
	return Domain[time.Time]{
		Name: "date",
		Cmp: func(a, b time.Time) int {
			return cmpTime(truncDay(a), truncDay(b))
		},
		Discrete: true,
		Succ:     func(v time.Time) time.Time { return truncDay(v).AddDate(0, 0, 1) },
		Pred:     func(v time.Time) time.Time { return truncDay(v).AddDate(0, 0, -1) },
	}
}

// Times returns the domain of instants in time, represented as time.Time:
// non-discrete, there is no well-defined "next instant".
func Times() Domain[time.Time] {
	return Domain[time.Time]{
		Name: "time",
		Cmp:  cmpTime,
	}
}

func truncDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func cmpTime(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Object returns a non-discrete, opaque-object domain: cmp is the only
// capability required (total order via "<" and "="), no Succ/Pred. This is
// the factory's priority-3 fallback (spec §4.5) for any type that doesn't
// carry its own numeric or calendar structure, e.g. UUIDs ordered lexically.
func Object[T any](name string, cmp func(a, b T) int) Domain[T] {
	return Domain[T]{Name: name, Cmp: cmp}
}
