package grid

import (
	"fmt"
	"math"
)

// SuggestPoints — point-count suggestion for a nominal step.
//
// Description:
//
//	Returns the smallest point count n ≥ 2 such that the actual step
//	(b−a)/(n−1) does not exceed the nominal step h.
//
// Algorithm Outline:
//  1. intervals = trunc((b−a)/h).
//  2. If intervals·h still undershoots b−a (floating-point truncation
//     bias), take one interval more so the grid is never coarser than
//     requested.
//  3. n = intervals + 1.
//
// Errors:
//   - ErrNonPositiveStep   — h ≤ 0 or NaN.
//   - ErrStepTooLarge      — h > b−a (the truncated interval count would
//     be zero; rejected instead of dividing by it).
//   - ErrInvalidInterval   — b ≤ a or a non-finite endpoint.
//
// Complexity: O(1).
func SuggestPoints(a, b, h float64) (int, error) {
	if math.IsNaN(h) || h <= 0 {
		return 0, fmt.Errorf("%w: got %g", ErrNonPositiveStep, h)
	}
	if !isFinite(a) || !isFinite(b) || b <= a {
		return 0, fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)
	}
	length := b - a
	if h > length {
		return 0, fmt.Errorf("%w: h=%g over [%g, %g]", ErrStepTooLarge, h, a, b)
	}
	intervals := int(length / h)
	if float64(intervals)*h < length {
		intervals++
	}
	return intervals + 1, nil
}
