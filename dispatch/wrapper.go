package dispatch

import (
	ivalset "github.com/gaissmai/ivalset"
)

// wrapper adapts an ivalset.Interval[T] to AnyInterval for a T the factory
// resolved at runtime.
type wrapper[T any] struct {
	kind Kind
	iv   ivalset.Interval[T]
}

func newWrapper[T any](kind Kind, iv ivalset.Interval[T]) *wrapper[T] {
	return &wrapper[T]{kind: kind, iv: iv}
}

func (w *wrapper[T]) Kind() Kind    { return w.kind }
func (w *wrapper[T]) Empty() bool   { return w.iv.Empty() }
func (w *wrapper[T]) String() string { return w.iv.String() }

func (w *wrapper[T]) Contains(x any) (bool, error) {
	v, ok := x.(T)
	if !ok {
		return false, &TypeMismatchError{Want: w.kind, Reason: "probe value has an incompatible type"}
	}
	return w.iv.Contains(v), nil
}

// setWrapper adapts an ivalset.Set[T] to AnySet.
type setWrapper[T any] struct {
	kind Kind
	dom  ivalset.Domain[T]
	set  ivalset.Set[T]
}

func newSetWrapper[T any](kind Kind, dom ivalset.Domain[T], ivs []ivalset.Interval[T]) *setWrapper[T] {
	return &setWrapper[T]{kind: kind, dom: dom, set: ivalset.NewSet(dom, ivs...)}
}

func (s *setWrapper[T]) Kind() Kind    { return s.kind }
func (s *setWrapper[T]) IsEmpty() bool { return s.set.IsEmpty() }
func (s *setWrapper[T]) String() string { return s.set.String() }

func (s *setWrapper[T]) Contains(x any) (bool, error) {
	v, ok := x.(T)
	if !ok {
		return false, &TypeMismatchError{Want: s.kind, Reason: "probe value has an incompatible type"}
	}
	return s.set.Contains(v), nil
}

func (s *setWrapper[T]) other(o AnySet) (*setWrapper[T], error) {
	t, ok := o.(*setWrapper[T])
	if !ok {
		return nil, &TypeMismatchError{Want: s.kind, Got: o.Kind(), Reason: "mismatched set domains"}
	}
	return t, nil
}

func (s *setWrapper[T]) Union(o AnySet) (AnySet, error) {
	t, err := s.other(o)
	if err != nil {
		return nil, err
	}
	return &setWrapper[T]{kind: s.kind, dom: s.dom, set: s.set.Union(t.set)}, nil
}

func (s *setWrapper[T]) Intersect(o AnySet) (AnySet, error) {
	t, err := s.other(o)
	if err != nil {
		return nil, err
	}
	return &setWrapper[T]{kind: s.kind, dom: s.dom, set: s.set.Intersect(t.set)}, nil
}

func (s *setWrapper[T]) Complement() AnySet {
	return &setWrapper[T]{kind: s.kind, dom: s.dom, set: s.set.Complement()}
}

func (s *setWrapper[T]) Minus(o AnySet) (AnySet, error) {
	t, err := s.other(o)
	if err != nil {
		return nil, err
	}
	return &setWrapper[T]{kind: s.kind, dom: s.dom, set: s.set.Minus(t.set)}, nil
}

func (s *setWrapper[T]) Equal(o AnySet) (bool, error) {
	t, err := s.other(o)
	if err != nil {
		return false, err
	}
	return s.set.Equal(t.set), nil
}
