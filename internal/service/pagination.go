package service

import "math"

// window returns the bounds [lo, hi) of items[skip:skip+limit] for a
// collection of n items. Negative bounds count from the end and bounds past
// either end are clamped, so the window may be empty but never invalid.
func window(n, skip, limit int) (lo, hi int) {
	lo = clampIndex(n, skip)
	hi = clampIndex(n, addSaturating(skip, limit))
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampIndex(n, i int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

func addSaturating(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	default:
		return a + b
	}
}
