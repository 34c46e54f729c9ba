package search

import (
	"fmt"
	"math/bits"
)

// Generate runs binary search over data, which must already be sorted in
// ascending order, and records every step. The midpoint always floors
// toward low. With duplicate values the index reported is whichever one
// the bisection reaches first.
func Generate(data []int, target int) *Run {
	owned := make([]int, len(data))
	copy(owned, data)

	run := &Run{Data: owned, Target: target, Steps: make([]Step, 0, 4*MaxIterations(len(owned))+2)}
	low, high := 0, len(owned)-1

	emit := func(kind Kind, mid int, msg string) {
		s := Step{
			Low:        low,
			High:       high,
			Mid:        mid,
			Message:    msg,
			Status:     Running,
			Kind:       kind,
			Target:     target,
			FoundIndex: -1,
		}
		if mid >= 0 {
			s.Value = owned[mid]
		}
		if kind == KindFound {
			s.Status = Found
			s.FoundIndex = mid
		}
		run.Steps = append(run.Steps, s)
	}

	emit(KindStart, -1, fmt.Sprintf("Search Target: %d", target))

	for low <= high {
		mid := low + (high-low)/2
		v := owned[mid]

		emit(KindMidpoint, mid, fmt.Sprintf("Midpoint is Index %d (Value: %d)", mid, v))
		emit(KindCompare, mid, fmt.Sprintf("Comparing: Is %d == %d?", v, target))

		switch {
		case v == target:
			emit(KindFound, mid, fmt.Sprintf("Number %d Found at Index %d!", target, mid))
			return run
		case v < target:
			emit(KindEliminateLeft, mid, fmt.Sprintf("%d < %d. Eliminate Left.", v, target))
			low = mid + 1
		default:
			emit(KindEliminateRight, mid, fmt.Sprintf("%d > %d. Eliminate Right.", v, target))
			high = mid - 1
		}
	}

	run.Steps = append(run.Steps, Step{
		Low:        -1,
		High:       -1,
		Mid:        -1,
		Message:    fmt.Sprintf("Number %d Not Found.", target),
		Status:     NotFound,
		Kind:       KindNotFound,
		Target:     target,
		FoundIndex: -1,
	})
	return run
}

// MaxIterations is the most midpoints Generate visits for n elements,
// ceil(log2(n+1)).
func MaxIterations(n int) int {
	if n <= 0 {
		return 0
	}
	return bits.Len(uint(n))
}
