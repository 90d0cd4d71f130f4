package interval

import "testing"

func FuzzSetComplementInvolution(f *testing.F) {
	f.Add(0, 5, 10, 15)
	f.Add(-3, -1, 2, 2)
	f.Add(0, 0, 0, 0)

	ints := Ints()
	f.Fuzz(func(t *testing.T, a, b, c, d int) {
		s := NewSet(ints, Closed(ints, a, b), Closed(ints, c, d))

		doubled := s.Complement().Complement()
		if !doubled.Equal(s) {
			t.Fatalf("double complement of %v = %v, want original back", s, doubled)
		}
	})
}

func FuzzSetDeMorgan(f *testing.F) {
	f.Add(0, 10, 5, 15)
	f.Add(-5, 5, 3, 3)

	ints := Ints()
	f.Fuzz(func(t *testing.T, aLo, aHi, bLo, bHi int) {
		a := NewSet(ints, Closed(ints, aLo, aHi))
		b := NewSet(ints, Closed(ints, bLo, bHi))

		lhs := a.Intersect(b).Complement()
		rhs := a.Complement().Union(b.Complement())
		if !lhs.Equal(rhs) {
			t.Fatalf("De Morgan failed for a=%v b=%v: ~(a∩b)=%v, ~a∪~b=%v", a, b, lhs, rhs)
		}
	})
}

func FuzzSetMinusIsIntersectComplement(f *testing.F) {
	f.Add(0, 10, 3, 6)
	f.Add(-2, 2, -10, 10)

	ints := Ints()
	f.Fuzz(func(t *testing.T, aLo, aHi, bLo, bHi int) {
		a := NewSet(ints, Closed(ints, aLo, aHi))
		b := NewSet(ints, Closed(ints, bLo, bHi))

		got := a.Minus(b)
		want := a.Intersect(b.Complement())
		if !got.Equal(want) {
			t.Fatalf("Minus mismatch for a=%v b=%v: got %v, want %v", a, b, got, want)
		}
	})
}

func FuzzSetContainsCoherence(f *testing.F) {
	f.Add(0, 10, 5)
	f.Add(-5, -1, 0)

	ints := Ints()
	f.Fuzz(func(t *testing.T, lo, hi, x int) {
		s := NewSet(ints, Closed(ints, lo, hi))

		want := !Closed(ints, lo, hi).Empty() && lo <= x && x <= hi
		if got := s.Contains(x); got != want {
			t.Fatalf("Contains(%d) in [%d,%d] = %v, want %v", x, lo, hi, got, want)
		}
	})
}

func FuzzIntervalFusionSymmetric(f *testing.F) {
	f.Add(0, 5, 6, 10)
	f.Add(0, 1, 2, 3)

	ints := Ints()
	f.Fuzz(func(t *testing.T, aLo, aHi, bLo, bHi int) {
		a := Closed(ints, aLo, aHi)
		b := Closed(ints, bLo, bHi)
		if a.Empty() || b.Empty() {
			return
		}
		if a.OverlapCmp(b) != 0 {
			return
		}

		ab, err := a.Fusion(b)
		if err != nil {
			t.Fatalf("Fusion(a, b) failed despite OverlapCmp == 0: %v", err)
		}
		ba, err := b.Fusion(a)
		if err != nil {
			t.Fatalf("Fusion(b, a) failed despite OverlapCmp == 0: %v", err)
		}
		if !ab.Equal(ba) {
			t.Fatalf("Fusion not symmetric: a.Fusion(b)=%v, b.Fusion(a)=%v", ab, ba)
		}
	})
}
