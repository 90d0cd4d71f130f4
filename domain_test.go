package interval

import (
	"testing"
	"time"
)

func TestIntsDomain(t *testing.T) {
	dom := Ints()
	if !dom.Discrete {
		t.Errorf("Ints().Discrete = false, want true")
	}
	if got := dom.Succ(5); got != 6 {
		t.Errorf("Succ(5) = %d, want 6", got)
	}
	if got := dom.Pred(5); got != 4 {
		t.Errorf("Pred(5) = %d, want 4", got)
	}
	if dom.Cmp(1, 2) >= 0 {
		t.Errorf("Cmp(1, 2) >= 0, want < 0")
	}
}

func TestFloat64sDomain(t *testing.T) {
	dom := Float64s()
	if dom.Discrete {
		t.Errorf("Float64s().Discrete = true, want false")
	}
	if dom.Cmp(1.5, 1.5) != 0 {
		t.Errorf("Cmp(1.5, 1.5) != 0")
	}
}

func TestDatesDomain(t *testing.T) {
	dom := Dates()
	if !dom.Discrete {
		t.Errorf("Dates().Discrete = false, want true")
	}

	morning := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)
	if dom.Cmp(morning, evening) != 0 {
		t.Errorf("Cmp truncated to days: morning vs evening = %d, want 0", dom.Cmp(morning, evening))
	}

	next := dom.Succ(morning)
	want := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("Succ(Jan 1) = %v, want %v", next, want)
	}
}

func TestTimesDomain(t *testing.T) {
	dom := Times()
	if dom.Discrete {
		t.Errorf("Times().Discrete = true, want false")
	}

	a := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	b := time.Date(2024, time.January, 1, 8, 0, 0, 1, time.UTC)
	if dom.Cmp(a, b) >= 0 {
		t.Errorf("Cmp at sub-second precision: got >= 0, want < 0")
	}
}

func TestObjectDomain(t *testing.T) {
	type label string
	dom := Object("label", func(a, b label) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	if dom.Discrete {
		t.Errorf("Object domain Discrete = true, want false")
	}
	if dom.Cmp("a", "b") >= 0 {
		t.Errorf("Cmp(a, b) >= 0, want < 0")
	}
}
