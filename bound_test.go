package interval

import "testing"

func TestBoundValue(t *testing.T) {
	u := Unbounded[int]()
	if _, ok := u.Value(); ok {
		t.Errorf("Unbounded().Value() ok = true, want false")
	}
	if !u.IsUnbounded() {
		t.Errorf("Unbounded().IsUnbounded() = false, want true")
	}

	f := Finite(5)
	v, ok := f.Value()
	if !ok || v != 5 {
		t.Errorf("Finite(5).Value() = %v, %v, want 5, true", v, ok)
	}
	if f.IsUnbounded() {
		t.Errorf("Finite(5).IsUnbounded() = true, want false")
	}
}

func TestCmpLowerBounds(t *testing.T) {
	cmp := cmpOrdered[int]

	tests := []struct {
		name                 string
		a                    Bound[int]
		aClosed              bool
		b                    Bound[int]
		bClosed              bool
		want                 int
	}{
		{"unbounded < finite", Unbounded[int](), false, Finite(0), true, -1},
		{"finite > unbounded", Finite(0), true, Unbounded[int](), false, 1},
		{"unbounded == unbounded", Unbounded[int](), false, Unbounded[int](), false, 0},
		{"equal value, closed < open", Finite(5), true, Finite(5), false, -1},
		{"equal value, open > closed", Finite(5), false, Finite(5), true, 1},
		{"equal value, both closed", Finite(5), true, Finite(5), true, 0},
		{"smaller value", Finite(1), true, Finite(2), true, -1},
		{"larger value", Finite(2), true, Finite(1), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cmpLowerBounds(cmp, tt.a, tt.aClosed, tt.b, tt.bClosed)
			if got != tt.want {
				t.Errorf("cmpLowerBounds(%v/%v, %v/%v) = %d, want %d", tt.a, tt.aClosed, tt.b, tt.bClosed, got, tt.want)
			}
		})
	}
}

func TestCmpUpperBounds(t *testing.T) {
	cmp := cmpOrdered[int]

	tests := []struct {
		name    string
		a       Bound[int]
		aClosed bool
		b       Bound[int]
		bClosed bool
		want    int
	}{
		{"unbounded > finite", Unbounded[int](), false, Finite(0), true, 1},
		{"finite < unbounded", Finite(0), true, Unbounded[int](), false, -1},
		{"unbounded == unbounded", Unbounded[int](), false, Unbounded[int](), false, 0},
		{"equal value, closed > open", Finite(5), true, Finite(5), false, 1},
		{"equal value, open < closed", Finite(5), false, Finite(5), true, -1},
		{"equal value, both closed", Finite(5), true, Finite(5), true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cmpUpperBounds(cmp, tt.a, tt.aClosed, tt.b, tt.bClosed)
			if got != tt.want {
				t.Errorf("cmpUpperBounds(%v/%v, %v/%v) = %d, want %d", tt.a, tt.aClosed, tt.b, tt.bClosed, got, tt.want)
			}
		})
	}
}
