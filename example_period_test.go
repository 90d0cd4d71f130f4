package interval_test

import (
	"fmt"

	interval "github.com/gaissmai/ivalset"
	"github.com/gaissmai/ivalset/internal/period"
)

// quarterDomain treats period.Quarter as a discrete domain: ordered by
// Compare, stepping by Next/Prev.
func quarterDomain() interval.Domain[period.Quarter] {
	return interval.Domain[period.Quarter]{
		Name:     "quarter",
		Cmp:      func(a, b period.Quarter) int { return a.Compare(b) },
		Discrete: true,
		Succ:     period.Quarter.Next,
		Pred:     period.Quarter.Prev,
	}
}

func q(year, quarter int) period.Quarter {
	return period.Quarter{Year: year, Q: quarter}
}

// ExampleSet_quarters builds two project phases as closed quarter
// intervals. The phases are adjacent (phase one ends 2023Q4, phase two
// starts 2024Q1) and fuse into a single run on this discrete domain.
func ExampleSet_quarters() {
	dom := quarterDomain()

	phaseOne := interval.Closed(dom, q(2023, 2), q(2023, 4))
	phaseTwo := interval.Closed(dom, q(2024, 1), q(2024, 3))

	project := interval.NewSet(dom, phaseOne, phaseTwo)
	fmt.Println(project)

	// Output:
	// {[2023Q2, 2024Q3]}
}

// ExampleSet_Intersect_quarters finds the quarters common to two
// overlapping hiring freezes.
func ExampleSet_Intersect_quarters() {
	dom := quarterDomain()

	freezeA := interval.NewSet(dom, interval.Closed(dom, q(2023, 3), q(2024, 2)))
	freezeB := interval.NewSet(dom, interval.Closed(dom, q(2024, 1), q(2024, 4)))

	fmt.Println(freezeA.Intersect(freezeB))

	// Output:
	// {[2024Q1, 2024Q2]}
}

// ExampleSet_Contains_quarters checks whether a given quarter falls
// inside a budget window that excludes a single mid-window quarter.
func ExampleSet_Contains_quarters() {
	dom := quarterDomain()

	window := interval.NewSet(dom, interval.Closed(dom, q(2023, 1), q(2023, 4)))
	excluded := interval.NewSet(dom, interval.Closed(dom, q(2023, 3), q(2023, 3)))

	budget := window.Minus(excluded)
	fmt.Println(budget)
	fmt.Println(budget.Contains(q(2023, 2)))
	fmt.Println(budget.Contains(q(2023, 3)))

	// Output:
	// {[2023Q1, 2023Q3) u (2023Q3, 2023Q4]}
	// true
	// false
}
