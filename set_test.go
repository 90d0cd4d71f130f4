package interval

import "testing"

func TestNewSetCanonical(t *testing.T) {
	ints := Ints()

	s := NewSet(ints,
		Closed(ints, 3, 4),
		Closed(ints, 2, 9),
		Closed(ints, 7, 9),
		Closed(ints, 3, 5),
	)

	if got, want := s.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d (everything fuses under [2,9])", got, want)
	}
	if want := Closed(ints, 2, 9); !s.Intervals()[0].Equal(want) {
		t.Errorf("merged interval = %v, want %v", s.Intervals()[0], want)
	}
}

func TestNewSetDropsEmpty(t *testing.T) {
	ints := Ints()

	s := NewSet(ints, Closed(ints, 5, 1), Open(ints, 1, 2), Closed(ints, 0, 0))
	if got, want := s.Len(), 1; got != want {
		t.Fatalf("Len() = %d, want %d (only the degenerate point survives)", got, want)
	}
}

func TestSetString(t *testing.T) {
	ints := Ints()

	empty := NewSet(ints)
	if got, want := empty.String(), "{}"; got != want {
		t.Errorf("empty Set.String() = %q, want %q", got, want)
	}

	s := NewSet(ints, Closed(ints, 0, 1), Closed(ints, 10, 11))
	if got, want := s.String(), "{[0, 1] u [10, 11]}"; got != want {
		t.Errorf("Set.String() = %q, want %q", got, want)
	}
}

func TestSetDomainZeroValue(t *testing.T) {
	var s Set[int]
	if !s.IsEmpty() {
		t.Errorf("zero-value Set.IsEmpty() = false, want true")
	}
	if s.Contains(5) {
		t.Errorf("zero-value Set.Contains(5) = true, want false")
	}
}
